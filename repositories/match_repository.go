package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/placarjuarez/placar-api/models"
)

var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchSlotTaken         = errors.New("a match already occupies this slot")
	ErrMatchTournamentInvalid = errors.New("match tournament conflict or invalid")
	ErrMatchModalityInvalid   = errors.New("match modality conflict or invalid")
	ErrMatchTeamInvalid       = errors.New("match team conflict or invalid")
)

// MatchRepository methods that can participate in the close/reopen
// transaction take an SQLExecutor; pass nil to run against the pool.
type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error)
	// GetByIDForUpdate locks the match row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error)
	// GetBySlotForUpdate fetches and locks the match occupying a
	// bracket slot. Returns ErrMatchNotFound when the slot is empty.
	GetBySlotForUpdate(ctx context.Context, exec SQLExecutor, tournamentID, modalityID int, slot models.Slot) (*models.Match, error)
	Update(ctx context.Context, exec SQLExecutor, match *models.Match) error
	// UpdateTeams rewrites only the team slots of a match; this is the
	// single write the bracket propagator performs downstream.
	UpdateTeams(ctx context.Context, exec SQLExecutor, id int, teamAID, teamBID *int) error
	ListByTournament(ctx context.Context, tournamentID int, modalityID *int, stage *models.Stage) ([]*models.Match, error)
	ListClosedByStages(ctx context.Context, tournamentID int, stages []models.Stage) ([]*models.Match, error)
	ListClosedByTeam(ctx context.Context, tournamentID, teamID int) ([]*models.Match, error)
	Delete(ctx context.Context, id int) error
}

const matchColumns = `
	id, tournament_id, modality_id, stage, slot, date, start_time,
	team_a_id, team_b_id, started, walkover, walkover_team_id,
	score_a, score_b, set1_a, set1_b, set2_a, set2_b, set3_a, set3_b,
	tied, tiebreak_a, tiebreak_b, closed, winner_id`

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	query := `
		INSERT INTO matches
			(tournament_id, modality_id, stage, slot, date, start_time,
			 team_a_id, team_b_id, started, walkover, walkover_team_id,
			 score_a, score_b, set1_a, set1_b, set2_a, set2_b, set3_a, set3_b,
			 tied, tiebreak_a, tiebreak_b, closed, winner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		match.TournamentID, match.ModalityID, match.Stage, match.Slot, match.Date, match.StartTime,
		match.TeamAID, match.TeamBID, match.Started, match.Walkover, match.WalkoverTeamID,
		match.ScoreA, match.ScoreB, match.Set1A, match.Set1B, match.Set2A, match.Set2B, match.Set3A, match.Set3B,
		match.Tied, match.TiebreakA, match.TiebreakB, match.Closed, match.WinnerID,
	).Scan(&match.ID)

	return handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return r.queryOne(ctx, exec, query, id)
}

func (r *postgresMatchRepository) GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1 FOR UPDATE`
	return r.queryOne(ctx, exec, query, id)
}

func (r *postgresMatchRepository) GetBySlotForUpdate(ctx context.Context, exec SQLExecutor, tournamentID, modalityID int, slot models.Slot) (*models.Match, error) {
	query := `SELECT ` + matchColumns + `
		FROM matches
		WHERE tournament_id = $1 AND modality_id = $2 AND slot = $3
		FOR UPDATE`
	return r.queryOne(ctx, exec, query, tournamentID, modalityID, int(slot))
}

func (r *postgresMatchRepository) queryOne(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) (*models.Match, error) {
	row := r.getExecutor(exec).QueryRowContext(ctx, query, args...)
	match, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	query := `
		UPDATE matches SET
			stage = $1, slot = $2, date = $3, start_time = $4,
			team_a_id = $5, team_b_id = $6, started = $7,
			walkover = $8, walkover_team_id = $9,
			score_a = $10, score_b = $11,
			set1_a = $12, set1_b = $13, set2_a = $14, set2_b = $15, set3_a = $16, set3_b = $17,
			tied = $18, tiebreak_a = $19, tiebreak_b = $20,
			closed = $21, winner_id = $22
		WHERE id = $23`

	result, err := r.getExecutor(exec).ExecContext(ctx, query,
		match.Stage, match.Slot, match.Date, match.StartTime,
		match.TeamAID, match.TeamBID, match.Started,
		match.Walkover, match.WalkoverTeamID,
		match.ScoreA, match.ScoreB,
		match.Set1A, match.Set1B, match.Set2A, match.Set2B, match.Set3A, match.Set3B,
		match.Tied, match.TiebreakA, match.TiebreakB,
		match.Closed, match.WinnerID,
		match.ID,
	)
	if err != nil {
		return handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateTeams(ctx context.Context, exec SQLExecutor, id int, teamAID, teamBID *int) error {
	query := `UPDATE matches SET team_a_id = $1, team_b_id = $2 WHERE id = $3`

	result, err := r.getExecutor(exec).ExecContext(ctx, query, teamAID, teamBID, id)
	if err != nil {
		return handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int, modalityID *int, stage *models.Stage) ([]*models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1`)

	args := []interface{}{tournamentID}
	if modalityID != nil {
		queryBuilder.WriteString(" AND modality_id = $" + strconv.Itoa(len(args)+1))
		args = append(args, *modalityID)
	}
	if stage != nil {
		queryBuilder.WriteString(" AND stage = $" + strconv.Itoa(len(args)+1))
		args = append(args, *stage)
	}
	queryBuilder.WriteString(" ORDER BY modality_id ASC, slot ASC")

	return r.queryMany(ctx, queryBuilder.String(), args...)
}

func (r *postgresMatchRepository) ListClosedByStages(ctx context.Context, tournamentID int, stages []models.Stage) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + `
		FROM matches
		WHERE tournament_id = $1 AND closed AND stage = ANY($2)
		ORDER BY modality_id ASC, slot ASC`

	stageNames := make([]string, len(stages))
	for i, s := range stages {
		stageNames[i] = string(s)
	}
	return r.queryMany(ctx, query, tournamentID, pq.Array(stageNames))
}

func (r *postgresMatchRepository) ListClosedByTeam(ctx context.Context, tournamentID, teamID int) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + `
		FROM matches
		WHERE tournament_id = $1 AND closed AND (team_a_id = $2 OR team_b_id = $2)
		ORDER BY modality_id ASC, date ASC, slot ASC`
	return r.queryMany(ctx, query, tournamentID, teamID)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func scanMatch(scanner interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var m models.Match
	err := scanner.Scan(
		&m.ID, &m.TournamentID, &m.ModalityID, &m.Stage, &m.Slot, &m.Date, &m.StartTime,
		&m.TeamAID, &m.TeamBID, &m.Started, &m.Walkover, &m.WalkoverTeamID,
		&m.ScoreA, &m.ScoreB, &m.Set1A, &m.Set1B, &m.Set2A, &m.Set2B, &m.Set3A, &m.Set3B,
		&m.Tied, &m.TiebreakA, &m.TiebreakB, &m.Closed, &m.WinnerID,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "matches_tournament_modality_slot_key" {
				return ErrMatchSlotTaken
			}
		case "23503": // foreign_key_violation
			switch pqErr.Constraint {
			case "matches_tournament_id_fkey":
				return ErrMatchTournamentInvalid
			case "matches_modality_id_fkey":
				return ErrMatchModalityInvalid
			case "matches_team_a_id_fkey", "matches_team_b_id_fkey",
				"matches_walkover_team_id_fkey", "matches_winner_id_fkey":
				return ErrMatchTeamInvalid
			}
		}
	}
	return err
}
