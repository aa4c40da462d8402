package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/placarjuarez/placar-api/brackets"
	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

func newMatchServiceForTest(matchRepo *fakeMatchRepo, modRepo *fakeModalityRepo, teamRepo *fakeTeamRepo) MatchService {
	return NewMatchService(fakeTxRunner{}, matchRepo, modRepo, teamRepo, brackets.DefaultTopology(), nil, nil)
}

func seedScoredBracket(t *testing.T) (*fakeMatchRepo, MatchService) {
	t.Helper()

	modRepo := newFakeModalityRepo(&models.Modality{ID: 1, Name: "Futsal", Category: models.CategoryMale, HasScore: true})
	teamRepo := newFakeTeamRepo(
		&models.Team{ID: 10, Name: "3A", Year: 2026},
		&models.Team{ID: 20, Name: "3B", Year: 2026},
		&models.Team{ID: 30, Name: "2A", Year: 2026},
		&models.Team{ID: 40, Name: "2B", Year: 2026},
	)
	matchRepo := newFakeMatchRepo()

	date := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	matchRepo.put(&models.Match{
		ID: 1, TournamentID: 1, ModalityID: 1, Stage: models.StageQuarterFinal,
		Slot: models.SlotQuarter1, Date: date, TeamAID: intp(10), TeamBID: intp(20),
	})
	matchRepo.put(&models.Match{
		ID: 2, TournamentID: 1, ModalityID: 1, Stage: models.StageSemiFinal,
		Slot: models.SlotSemi1, Date: date,
	})
	matchRepo.put(&models.Match{
		ID: 3, TournamentID: 1, ModalityID: 1, Stage: models.StageSemiFinal,
		Slot: models.SlotSemi2, Date: date, TeamAID: intp(30), TeamBID: intp(40),
	})
	matchRepo.put(&models.Match{
		ID: 4, TournamentID: 1, ModalityID: 1, Stage: models.StageFinal,
		Slot: models.SlotFinal, Date: date,
	})
	matchRepo.put(&models.Match{
		ID: 5, TournamentID: 1, ModalityID: 1, Stage: models.StageThirdPlace,
		Slot: models.SlotThird, Date: date,
	})

	return matchRepo, newMatchServiceForTest(matchRepo, modRepo, teamRepo)
}

func TestCloseQuarterfinalPropagatesWinner(t *testing.T) {
	ctx := context.Background()
	matchRepo, svc := seedScoredBracket(t)

	qf := matchRepo.matches[1]
	qf.Started = true
	qf.ScoreA = intp(3)
	qf.ScoreB = intp(1)

	closed, err := svc.Close(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, closed.WinnerID)
	require.Equal(t, 10, *closed.WinnerID)

	semi := matchRepo.matches[2]
	require.NotNil(t, semi.TeamAID)
	require.Equal(t, 10, *semi.TeamAID)
	require.Nil(t, semi.TeamBID)
}

func TestReopenClearsWinnerAndDownstream(t *testing.T) {
	ctx := context.Background()
	matchRepo, svc := seedScoredBracket(t)

	qf := matchRepo.matches[1]
	qf.Started = true
	qf.ScoreA = intp(3)
	qf.ScoreB = intp(1)

	_, err := svc.Close(ctx, 1)
	require.NoError(t, err)

	reopened, err := svc.Reopen(ctx, 1)
	require.NoError(t, err)
	require.False(t, reopened.Closed)
	require.Nil(t, reopened.WinnerID)

	semi := matchRepo.matches[2]
	require.Nil(t, semi.TeamAID)
}

func TestCloseSemifinalFansOutWinnerAndLoser(t *testing.T) {
	ctx := context.Background()
	matchRepo, svc := seedScoredBracket(t)

	semi := matchRepo.matches[3]
	semi.Started = true
	semi.ScoreA = intp(2)
	semi.ScoreB = intp(5)

	closed, err := svc.Close(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 40, *closed.WinnerID)

	final := matchRepo.matches[4]
	require.NotNil(t, final.TeamBID)
	require.Equal(t, 40, *final.TeamBID)

	third := matchRepo.matches[5]
	require.NotNil(t, third.TeamBID)
	require.Equal(t, 30, *third.TeamBID)
}

func TestCloseTiedMatchUsesTiebreak(t *testing.T) {
	ctx := context.Background()
	matchRepo, svc := seedScoredBracket(t)

	qf := matchRepo.matches[1]
	qf.Started = true
	qf.ScoreA = intp(2)
	qf.ScoreB = intp(2)
	qf.Tied = boolp(true)
	qf.TiebreakA = intp(3)
	qf.TiebreakB = intp(4)

	closed, err := svc.Close(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 20, *closed.WinnerID)
}

func TestCloseWithoutScoresFailsValidation(t *testing.T) {
	ctx := context.Background()
	_, svc := seedScoredBracket(t)

	_, err := svc.Close(ctx, 1)
	require.Error(t, err)

	var verr *MatchValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields.Map(), "score_a")
}

func TestCloseWalkoverAwardsOpposingTeam(t *testing.T) {
	ctx := context.Background()
	matchRepo, svc := seedScoredBracket(t)

	qf := matchRepo.matches[1]
	qf.Walkover = boolp(true)
	qf.WalkoverTeamID = intp(10)

	closed, err := svc.Close(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 20, *closed.WinnerID)

	semi := matchRepo.matches[2]
	require.Equal(t, 20, *semi.TeamAID)
}

func TestCloseJudgedModalityRequiresManualWinner(t *testing.T) {
	ctx := context.Background()

	modRepo := newFakeModalityRepo(&models.Modality{ID: 2, Name: "Chess", Category: models.CategoryMixed, HasScore: false})
	teamRepo := newFakeTeamRepo(
		&models.Team{ID: 10, Name: "3A", Year: 2026},
		&models.Team{ID: 20, Name: "3B", Year: 2026},
	)
	matchRepo := newFakeMatchRepo()
	date := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	seeded := matchRepo.put(&models.Match{
		TournamentID: 1, ModalityID: 2, Stage: models.StageSemiFinal, Slot: models.SlotSmallSemi1,
		Date: date, TeamAID: intp(10), TeamBID: intp(20),
	})
	svc := newMatchServiceForTest(matchRepo, modRepo, teamRepo)

	_, err := svc.Close(ctx, seeded.ID)
	var verr *MatchValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields.Map(), "winner_id")

	updated, err := svc.Update(ctx, seeded.ID, MatchInput{
		TournamentID: 1, ModalityID: 2, Stage: models.StageSemiFinal, Slot: models.SlotSmallSemi1,
		Date: date, TeamAID: intp(10), TeamBID: intp(20),
		Closed: true, WinnerID: intp(20),
	})
	require.NoError(t, err)
	require.Equal(t, 20, *updated.WinnerID)
}

func TestUpdateIntoOccupiedSlotIsRejected(t *testing.T) {
	ctx := context.Background()
	matchRepo, svc := seedScoredBracket(t)

	date := matchRepo.matches[1].Date
	_, err := svc.Update(ctx, 1, MatchInput{
		TournamentID: 1, ModalityID: 1, Stage: models.StageSemiFinal, Slot: models.SlotSemi1,
		Date: date, TeamAID: intp(10), TeamBID: intp(20),
	})
	require.Error(t, err)

	var verr *MatchValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields.Map(), "slot")
}

// countingTxRunner records how many transactions an operation opens.
type countingTxRunner struct {
	calls int
}

func (r *countingTxRunner) RunInTx(ctx context.Context, fn func(tx repositories.SQLExecutor) error) error {
	r.calls++
	return fn(nil)
}

func TestCreateClosedMatchPropagatesInOneTransaction(t *testing.T) {
	ctx := context.Background()

	modRepo := newFakeModalityRepo(&models.Modality{ID: 1, Name: "Futsal", Category: models.CategoryMale, HasScore: true})
	teamRepo := newFakeTeamRepo(
		&models.Team{ID: 10, Name: "3A", Year: 2026},
		&models.Team{ID: 20, Name: "3B", Year: 2026},
	)
	matchRepo := newFakeMatchRepo()
	date := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	matchRepo.put(&models.Match{
		TournamentID: 1, ModalityID: 1, Stage: models.StageSemiFinal,
		Slot: models.SlotSemi1, Date: date,
	})
	txr := &countingTxRunner{}
	svc := NewMatchService(txr, matchRepo, modRepo, teamRepo, brackets.DefaultTopology(), nil, nil)

	created, err := svc.Create(ctx, MatchInput{
		TournamentID: 1, ModalityID: 1, Stage: models.StageQuarterFinal, Slot: models.SlotQuarter1,
		Date: date, TeamAID: intp(10), TeamBID: intp(20), Started: true,
		ScoreA: intp(3), ScoreB: intp(1), Closed: true,
	})
	require.NoError(t, err)
	require.Equal(t, 10, *created.WinnerID)

	// Insert and downstream write share a single transaction.
	require.Equal(t, 1, txr.calls)

	semi, err := matchRepo.GetBySlotForUpdate(ctx, nil, 1, 1, models.SlotSemi1)
	require.NoError(t, err)
	require.NotNil(t, semi.TeamAID)
	require.Equal(t, 10, *semi.TeamAID)
}

func TestDeleteClosedMatchWithdrawsPropagation(t *testing.T) {
	ctx := context.Background()
	matchRepo, svc := seedScoredBracket(t)

	qf := matchRepo.matches[1]
	qf.Started = true
	qf.ScoreA = intp(3)
	qf.ScoreB = intp(1)

	_, err := svc.Close(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1))
	require.NotContains(t, matchRepo.matches, 1)

	semi := matchRepo.matches[2]
	require.Nil(t, semi.TeamAID)
}
