package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/placarjuarez/placar-api/models"
)

func TestExtraCreateValidatesKindAndPoints(t *testing.T) {
	ctx := context.Background()
	svc := NewExtraService(newFakeExtraRepo(), newFakeTeamRepo())

	_, err := svc.Create(ctx, ExtraInput{TournamentID: 1, TeamID: 1, Kind: "bonus", Points: 10})
	require.ErrorIs(t, err, ErrExtraKindInvalid)

	_, err = svc.Create(ctx, ExtraInput{TournamentID: 1, TeamID: 1, Kind: models.ExtraPenalty, Points: -5})
	require.ErrorIs(t, err, ErrExtraPointsInvalid)

	_, err = svc.Create(ctx, ExtraInput{TournamentID: 1, TeamID: 1, Kind: models.ExtraDonation, Points: 0})
	require.ErrorIs(t, err, ErrExtraPointsInvalid)
}

func TestExtraPenaltyStoredAsPositiveMagnitude(t *testing.T) {
	ctx := context.Background()
	repo := newFakeExtraRepo()
	svc := NewExtraService(repo, newFakeTeamRepo(&models.Team{ID: 1, Name: "1A", Year: 2026}))

	created, err := svc.Create(ctx, ExtraInput{
		TournamentID: 1, TeamID: 1, Kind: models.ExtraPenalty, Points: 30, Note: "unsporting conduct",
	})
	require.NoError(t, err)
	require.Equal(t, 30, created.Points)
	require.Equal(t, models.ExtraPenalty, created.Kind)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 30, fetched.Points)
	require.NotNil(t, fetched.Team)
}

func TestExtraUpdateRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	repo := newFakeExtraRepo(&models.Extra{ID: 7, TournamentID: 1, TeamID: 1, Kind: models.ExtraDonation, Points: 50})
	svc := NewExtraService(repo, newFakeTeamRepo())

	_, err := svc.Update(ctx, 7, ExtraInput{TournamentID: 1, TeamID: 1, Kind: models.ExtraDonation, Points: 0})
	require.ErrorIs(t, err, ErrExtraPointsInvalid)

	_, err = svc.Update(ctx, 999, ExtraInput{TournamentID: 1, TeamID: 1, Kind: models.ExtraDonation, Points: 10})
	require.ErrorIs(t, err, ErrExtraNotFound)
}
