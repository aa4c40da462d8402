package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/placarjuarez/placar-api/brackets"
	"github.com/placarjuarez/placar-api/db"
	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

// MatchInput carries the user-editable match fields. Tournament and
// modality are fixed at creation; everything else can change until the
// match is closed.
type MatchInput struct {
	TournamentID   int          `json:"tournament_id"`
	ModalityID     int          `json:"modality_id"`
	Stage          models.Stage `json:"stage"`
	Slot           models.Slot  `json:"slot"`
	Date           time.Time    `json:"date"`
	StartTime      *string      `json:"start_time"`
	TeamAID        *int         `json:"team_a_id"`
	TeamBID        *int         `json:"team_b_id"`
	Started        bool         `json:"started"`
	Walkover       *bool        `json:"walkover"`
	WalkoverTeamID *int         `json:"walkover_team_id"`
	ScoreA         *int         `json:"score_a"`
	ScoreB         *int         `json:"score_b"`
	Set1A          *int         `json:"set1_a"`
	Set1B          *int         `json:"set1_b"`
	Set2A          *int         `json:"set2_a"`
	Set2B          *int         `json:"set2_b"`
	Set3A          *int         `json:"set3_a"`
	Set3B          *int         `json:"set3_b"`
	Tied           *bool        `json:"tied"`
	TiebreakA      *int         `json:"tiebreak_a"`
	TiebreakB      *int         `json:"tiebreak_b"`
	Closed         bool         `json:"closed"`
	// WinnerID is the manual winner selection for modalities without
	// scores; scored modalities ignore it and resolve the winner.
	WinnerID *int `json:"winner_id"`
}

type MatchService interface {
	Create(ctx context.Context, input MatchInput) (*models.Match, error)
	Get(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int, modalityID *int, stage *models.Stage) ([]*models.Match, error)
	Update(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	// Close and Reopen are the explicit lifecycle operations: they run
	// validate → resolve → persist → propagate as one transaction.
	Close(ctx context.Context, id int) (*models.Match, error)
	Reopen(ctx context.Context, id int) (*models.Match, error)
	Delete(ctx context.Context, id int) error
}

type matchService struct {
	txr          db.TxRunner
	matchRepo    repositories.MatchRepository
	modalityRepo repositories.ModalityRepository
	teamRepo     repositories.TeamRepository
	topology     brackets.Topology
	hub          *brackets.Hub
	logger       *slog.Logger
}

func NewMatchService(
	txr db.TxRunner,
	matchRepo repositories.MatchRepository,
	modalityRepo repositories.ModalityRepository,
	teamRepo repositories.TeamRepository,
	topology brackets.Topology,
	hub *brackets.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		txr:          txr,
		matchRepo:    matchRepo,
		modalityRepo: modalityRepo,
		teamRepo:     teamRepo,
		topology:     topology,
		hub:          hub,
		logger:       logger,
	}
}

func (s *matchService) Create(ctx context.Context, input MatchInput) (*models.Match, error) {
	modality, err := s.modalityRepo.GetByID(ctx, input.ModalityID)
	if err != nil {
		if errors.Is(err, repositories.ErrModalityNotFound) {
			return nil, ErrModalityNotFound
		}
		return nil, fmt.Errorf("failed to load modality %d: %w", input.ModalityID, err)
	}

	match := input.toModel()
	if errs := brackets.Validate(match, modality); len(errs) > 0 {
		return nil, &MatchValidationError{Fields: errs}
	}
	if match.Closed {
		match.WinnerID = brackets.ResolveWinner(match, modality)
	} else {
		match.WinnerID = nil
	}

	// A match created already closed must propagate like a close, so
	// the insert and the downstream writes share one transaction.
	err = s.txr.RunInTx(ctx, func(tx repositories.SQLExecutor) error {
		if err := s.matchRepo.Create(ctx, tx, match); err != nil {
			return mapMatchRepoError(err)
		}
		if match.Closed {
			return s.propagate(ctx, tx, match)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if match.Closed {
		s.broadcast(match)
	}
	return match, nil
}

func (s *matchService) Get(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, mapMatchRepoError(err)
	}
	s.populateRelations(ctx, match)
	return match, nil
}

func (s *matchService) ListByTournament(ctx context.Context, tournamentID int, modalityID *int, stage *models.Stage) ([]*models.Match, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, modalityID, stage)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	return matches, nil
}

func (s *matchService) Update(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	return s.runLifecycle(ctx, id, func(m *models.Match) {
		m.Stage = input.Stage
		m.Slot = input.Slot
		m.Date = input.Date
		m.StartTime = input.StartTime
		m.TeamAID = input.TeamAID
		m.TeamBID = input.TeamBID
		m.Started = input.Started
		m.Walkover = input.Walkover
		m.WalkoverTeamID = input.WalkoverTeamID
		m.ScoreA = input.ScoreA
		m.ScoreB = input.ScoreB
		m.Set1A, m.Set1B = input.Set1A, input.Set1B
		m.Set2A, m.Set2B = input.Set2A, input.Set2B
		m.Set3A, m.Set3B = input.Set3A, input.Set3B
		m.Tied = input.Tied
		m.TiebreakA = input.TiebreakA
		m.TiebreakB = input.TiebreakB
		m.Closed = input.Closed
		m.WinnerID = input.WinnerID
	})
}

func (s *matchService) Close(ctx context.Context, id int) (*models.Match, error) {
	return s.runLifecycle(ctx, id, func(m *models.Match) { m.Closed = true })
}

func (s *matchService) Reopen(ctx context.Context, id int) (*models.Match, error) {
	return s.runLifecycle(ctx, id, func(m *models.Match) { m.Closed = false })
}

func (s *matchService) Delete(ctx context.Context, id int) error {
	match, err := s.matchRepo.GetByID(ctx, nil, id)
	if err != nil {
		return mapMatchRepoError(err)
	}
	if match.Closed {
		// Withdraw this match's contribution from the bracket before
		// the row disappears.
		if _, err := s.Reopen(ctx, id); err != nil {
			return err
		}
	}
	return mapMatchRepoError(s.matchRepo.Delete(ctx, id))
}

// runLifecycle is the single write path for match state: it locks the
// match, applies the mutation, validates, resolves the winner,
// persists, and propagates to the downstream bracket slots, all inside
// one transaction. A failing validation rolls everything back.
func (s *matchService) runLifecycle(ctx context.Context, id int, mutate func(*models.Match)) (*models.Match, error) {
	var match *models.Match

	err := s.txr.RunInTx(ctx, func(tx repositories.SQLExecutor) error {
		var err error
		match, err = s.matchRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return mapMatchRepoError(err)
		}

		mutate(match)

		modality, err := s.modalityRepo.GetByID(ctx, match.ModalityID)
		if err != nil {
			if errors.Is(err, repositories.ErrModalityNotFound) {
				return ErrModalityNotFound
			}
			return fmt.Errorf("failed to load modality %d: %w", match.ModalityID, err)
		}

		if errs := brackets.Validate(match, modality); len(errs) > 0 {
			return &MatchValidationError{Fields: errs}
		}

		if match.Closed {
			match.WinnerID = brackets.ResolveWinner(match, modality)
		} else {
			match.WinnerID = nil
		}

		if err := s.matchRepo.Update(ctx, tx, match); err != nil {
			return mapMatchRepoError(err)
		}

		return s.propagate(ctx, tx, match)
	})
	if err != nil {
		return nil, err
	}

	s.broadcast(match)
	return match, nil
}

// propagate writes this match's resolved winner (and, on semifinal
// slots, loser) into the downstream match fields the topology names.
// An open match propagates "no winner", clearing its contribution.
// Missing downstream matches are the expected terminal condition.
func (s *matchService) propagate(ctx context.Context, tx repositories.SQLExecutor, match *models.Match) error {
	route, ok := s.topology.Route(match.Slot)
	if !ok {
		return nil
	}

	var winnerID, loserID *int
	if match.Closed && match.WinnerID != nil {
		winnerID = match.WinnerID
		if match.TeamAID != nil && *match.TeamAID == *winnerID {
			loserID = match.TeamBID
		} else {
			loserID = match.TeamAID
		}
	}

	if err := s.writeBranch(ctx, tx, match, route.Winner, winnerID); err != nil {
		return err
	}
	if route.Loser != nil {
		if err := s.writeBranch(ctx, tx, match, *route.Loser, loserID); err != nil {
			return err
		}
	}
	return nil
}

func (s *matchService) writeBranch(ctx context.Context, tx repositories.SQLExecutor, match *models.Match, branch brackets.Branch, teamID *int) error {
	next, err := s.matchRepo.GetBySlotForUpdate(ctx, tx, match.TournamentID, match.ModalityID, branch.Slot)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil
		}
		return fmt.Errorf("failed to fetch downstream match at slot %d: %w", branch.Slot, err)
	}

	switch branch.Side {
	case brackets.SideTeamA:
		next.TeamAID = teamID
	case brackets.SideTeamB:
		next.TeamBID = teamID
	}

	if err := s.matchRepo.UpdateTeams(ctx, tx, next.ID, next.TeamAID, next.TeamBID); err != nil {
		return fmt.Errorf("failed to update downstream match %d: %w", next.ID, err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "bracket propagation",
			slog.Int("match_id", match.ID),
			slog.Int("downstream_id", next.ID),
			slog.String("side", string(branch.Side)),
			slog.Any("team_id", teamID),
		)
	}
	return nil
}

func (s *matchService) broadcast(match *models.Match) {
	if s.hub == nil {
		return
	}
	room := "tournament_" + strconv.Itoa(match.TournamentID)
	s.hub.BroadcastToRoom(room, brackets.Message{Type: brackets.MessageMatchUpdated, Payload: match})

	// Only final and third-place results move the general ranking.
	if match.Stage == models.StageFinal || match.Stage == models.StageThirdPlace {
		s.hub.BroadcastToRoom(room, brackets.Message{
			Type:    brackets.MessageStandingsUpdated,
			Payload: map[string]int{"tournament_id": match.TournamentID},
		})
	}
}

func (s *matchService) populateRelations(ctx context.Context, match *models.Match) {
	if modality, err := s.modalityRepo.GetByID(ctx, match.ModalityID); err == nil {
		match.Modality = modality
	}
	if match.TeamAID != nil {
		if team, err := s.teamRepo.GetByID(ctx, *match.TeamAID); err == nil {
			match.TeamA = team
		}
	}
	if match.TeamBID != nil {
		if team, err := s.teamRepo.GetByID(ctx, *match.TeamBID); err == nil {
			match.TeamB = team
		}
	}
}

func (in MatchInput) toModel() *models.Match {
	return &models.Match{
		TournamentID:   in.TournamentID,
		ModalityID:     in.ModalityID,
		Stage:          in.Stage,
		Slot:           in.Slot,
		Date:           in.Date,
		StartTime:      in.StartTime,
		TeamAID:        in.TeamAID,
		TeamBID:        in.TeamBID,
		Started:        in.Started,
		Walkover:       in.Walkover,
		WalkoverTeamID: in.WalkoverTeamID,
		ScoreA:         in.ScoreA,
		ScoreB:         in.ScoreB,
		Set1A:          in.Set1A,
		Set1B:          in.Set1B,
		Set2A:          in.Set2A,
		Set2B:          in.Set2B,
		Set3A:          in.Set3A,
		Set3B:          in.Set3B,
		Tied:           in.Tied,
		TiebreakA:      in.TiebreakA,
		TiebreakB:      in.TiebreakB,
		Closed:         in.Closed,
		WinnerID:       in.WinnerID,
	}
}

func mapMatchRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrMatchSlotTaken):
		return &MatchValidationError{Fields: brackets.ValidationErrors{
			{Field: "slot", Message: "a match already occupies this slot"},
		}}
	case errors.Is(err, repositories.ErrMatchModalityInvalid):
		return ErrModalityNotFound
	case errors.Is(err, repositories.ErrMatchTournamentInvalid):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrMatchTeamInvalid):
		return ErrTeamNotFound
	default:
		return err
	}
}
