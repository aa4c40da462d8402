package brackets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/placarjuarez/placar-api/models"
)

func TestResolveWinnerScored(t *testing.T) {
	m := baseMatch()
	m.Closed = true
	m.ScoreA = intPtr(3)
	m.ScoreB = intPtr(1)

	winner := ResolveWinner(m, scoredModality())
	require.NotNil(t, winner)
	require.Equal(t, 10, *winner)

	// Deterministic: same inputs, same team.
	again := ResolveWinner(m, scoredModality())
	require.Equal(t, winner, again)
}

func TestResolveWinnerWalkover(t *testing.T) {
	m := baseMatch()
	m.Walkover = boolPtr(true)
	m.WalkoverTeamID = intPtr(10)
	// Walkover wins regardless of any other populated field.
	m.WinnerID = intPtr(10)

	winner := ResolveWinner(m, scoredModality())
	require.NotNil(t, winner)
	require.Equal(t, 20, *winner)
}

func TestResolveWinnerTiebreak(t *testing.T) {
	m := baseMatch()
	m.Closed = true
	m.ScoreA = intPtr(2)
	m.ScoreB = intPtr(2)
	m.Tied = boolPtr(true)
	m.TiebreakA = intPtr(3)
	m.TiebreakB = intPtr(4)

	winner := ResolveWinner(m, scoredModality())
	require.NotNil(t, winner)
	require.Equal(t, 20, *winner)
}

func TestResolveWinnerManualSelection(t *testing.T) {
	m := baseMatch()
	m.Closed = true
	m.WinnerID = intPtr(20)

	winner := ResolveWinner(m, judgedModality())
	require.NotNil(t, winner)
	require.Equal(t, 20, *winner)
}

func TestResolveWinnerTotality(t *testing.T) {
	// Every insufficiently populated combination yields nil instead of
	// panicking.
	cases := map[string]*models.Match{
		"no scores": func() *models.Match {
			m := baseMatch()
			m.Closed = true
			return m
		}(),
		"half score": func() *models.Match {
			m := baseMatch()
			m.Closed = true
			m.ScoreA = intPtr(1)
			return m
		}(),
		"walkover without team": func() *models.Match {
			m := baseMatch()
			m.Walkover = boolPtr(true)
			return m
		}(),
		"tie without tiebreak": func() *models.Match {
			m := baseMatch()
			m.Closed = true
			m.ScoreA = intPtr(1)
			m.ScoreB = intPtr(1)
			m.Tied = boolPtr(true)
			return m
		}(),
	}

	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			require.Nil(t, ResolveWinner(m, scoredModality()))
		})
	}

	t.Run("manual winner unset", func(t *testing.T) {
		m := baseMatch()
		m.Closed = true
		require.Nil(t, ResolveWinner(m, judgedModality()))
	})
}
