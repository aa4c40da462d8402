package brackets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/placarjuarez/placar-api/models"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func scoredModality() *models.Modality {
	return &models.Modality{ID: 1, Name: "Futsal", Category: models.CategoryMixed, HasScore: true}
}

func setModality() *models.Modality {
	return &models.Modality{ID: 2, Name: "Volleyball", Category: models.CategoryMixed, HasScore: true, HasSets: true}
}

func judgedModality() *models.Modality {
	return &models.Modality{ID: 3, Name: "Chess", Category: models.CategoryMixed}
}

func baseMatch() *models.Match {
	return &models.Match{
		ID:           1,
		TournamentID: 1,
		ModalityID:   1,
		Stage:        models.StageQuarterFinal,
		Slot:         models.SlotQuarter1,
		Date:         time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		TeamAID:      intPtr(10),
		TeamBID:      intPtr(20),
	}
}

func fieldsOf(errs ValidationErrors) []string {
	fields := make([]string, len(errs))
	for i, fe := range errs {
		fields[i] = fe.Field
	}
	return fields
}

func TestValidateRequiredFields(t *testing.T) {
	m := &models.Match{}
	errs := Validate(m, nil)

	require.ElementsMatch(t,
		[]string{"tournament_id", "stage", "modality_id", "slot", "date"},
		fieldsOf(errs))
}

func TestValidateTeamsMustDiffer(t *testing.T) {
	m := baseMatch()
	m.TeamBID = intPtr(10)

	errs := Validate(m, scoredModality())
	require.Contains(t, fieldsOf(errs), "team_b_id")
}

func TestValidateStartRequiresBothTeams(t *testing.T) {
	m := baseMatch()
	m.TeamBID = nil
	m.Started = true

	errs := Validate(m, scoredModality())
	require.Contains(t, fieldsOf(errs), "started")
}

func TestValidateWalkover(t *testing.T) {
	t.Run("walkover team must participate", func(t *testing.T) {
		m := baseMatch()
		m.Walkover = boolPtr(true)
		m.WalkoverTeamID = intPtr(99)

		errs := Validate(m, scoredModality())
		require.Contains(t, fieldsOf(errs), "walkover_team_id")
	})

	t.Run("walkover must not carry a score", func(t *testing.T) {
		m := baseMatch()
		m.Walkover = boolPtr(true)
		m.WalkoverTeamID = intPtr(10)
		m.ScoreA = intPtr(3)

		errs := Validate(m, scoredModality())
		require.Contains(t, fieldsOf(errs), "score_a")
	})

	t.Run("clean walkover close is valid", func(t *testing.T) {
		m := baseMatch()
		m.Walkover = boolPtr(true)
		m.WalkoverTeamID = intPtr(10)
		m.Closed = true

		require.Empty(t, Validate(m, scoredModality()))
	})
}

func TestValidateScoredClose(t *testing.T) {
	t.Run("both scores required", func(t *testing.T) {
		m := baseMatch()
		m.Closed = true
		m.ScoreA = intPtr(2)

		errs := Validate(m, scoredModality())
		require.Equal(t, ValidationErrors{{Field: "score_a", Message: "both scores required to close"}}, errs)
	})

	t.Run("tie flag rejected when scores differ", func(t *testing.T) {
		m := baseMatch()
		m.Closed = true
		m.ScoreA = intPtr(3)
		m.ScoreB = intPtr(1)
		m.Tied = boolPtr(true)

		errs := Validate(m, scoredModality())
		require.Contains(t, fieldsOf(errs), "tied")

		// The rejected state must never reach the resolver; once the
		// stray flag is dropped the match resolves normally.
		m.Tied = nil
		require.Empty(t, Validate(m, scoredModality()))
		require.Equal(t, 10, *ResolveWinner(m, scoredModality()))
	})

	t.Run("equal score requires tie flag", func(t *testing.T) {
		m := baseMatch()
		m.Closed = true
		m.ScoreA = intPtr(2)
		m.ScoreB = intPtr(2)

		errs := Validate(m, scoredModality())
		require.Contains(t, fieldsOf(errs), "tied")
	})

	t.Run("tie requires unequal tiebreak", func(t *testing.T) {
		m := baseMatch()
		m.Closed = true
		m.ScoreA = intPtr(2)
		m.ScoreB = intPtr(2)
		m.Tied = boolPtr(true)
		m.TiebreakA = intPtr(5)
		m.TiebreakB = intPtr(5)

		errs := Validate(m, scoredModality())
		require.Contains(t, fieldsOf(errs), "tiebreak_b")
	})

	t.Run("resolved tie is valid", func(t *testing.T) {
		m := baseMatch()
		m.Closed = true
		m.ScoreA = intPtr(2)
		m.ScoreB = intPtr(2)
		m.Tied = boolPtr(true)
		m.TiebreakA = intPtr(5)
		m.TiebreakB = intPtr(3)

		require.Empty(t, Validate(m, scoredModality()))
	})
}

func TestValidateSets(t *testing.T) {
	t.Run("sets rejected when modality has none", func(t *testing.T) {
		m := baseMatch()
		m.Set1A = intPtr(25)

		errs := Validate(m, scoredModality())
		require.Contains(t, fieldsOf(errs), "set1_a")
	})

	t.Run("sets accepted when modality has them", func(t *testing.T) {
		m := baseMatch()
		m.ModalityID = 2
		m.ScoreA = intPtr(2)
		m.ScoreB = intPtr(0)
		m.Set1A = intPtr(25)
		m.Set1B = intPtr(20)
		m.Closed = true

		require.Empty(t, Validate(m, setModality()))
	})
}

func TestValidateJudgedModality(t *testing.T) {
	t.Run("scores rejected", func(t *testing.T) {
		m := baseMatch()
		m.ModalityID = 3
		m.ScoreA = intPtr(1)

		errs := Validate(m, judgedModality())
		require.Contains(t, fieldsOf(errs), "score_a")
	})

	t.Run("winner required to close", func(t *testing.T) {
		m := baseMatch()
		m.ModalityID = 3
		m.Closed = true

		errs := Validate(m, judgedModality())
		require.Contains(t, fieldsOf(errs), "winner_id")
	})

	t.Run("winner must participate", func(t *testing.T) {
		m := baseMatch()
		m.ModalityID = 3
		m.Closed = true
		m.WinnerID = intPtr(99)

		errs := Validate(m, judgedModality())
		require.Contains(t, fieldsOf(errs), "winner_id")
	})

	t.Run("explicit winner closes cleanly", func(t *testing.T) {
		m := baseMatch()
		m.ModalityID = 3
		m.Closed = true
		m.WinnerID = intPtr(20)

		require.Empty(t, Validate(m, judgedModality()))
	})
}

func TestValidationErrorsMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "score_a", Message: "both scores required to close"},
		{Field: "tied", Message: "equal score requires tie flag"},
	}
	require.Equal(t, map[string]string{
		"score_a": "both scores required to close",
		"tied":    "equal score requires tie flag",
	}, errs.Map())
	require.Contains(t, errs.Error(), "score_a")
}
