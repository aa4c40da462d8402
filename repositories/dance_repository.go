package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/placarjuarez/placar-api/models"
)

var ErrDanceNotFound = errors.New("dance performance not found")

type DanceRepository interface {
	Create(ctx context.Context, dance *models.DancePerformance) error
	GetByID(ctx context.Context, id int) (*models.DancePerformance, error)
	// ListByTournament optionally narrows to a placement range
	// (inclusive on both ends).
	ListByTournament(ctx context.Context, tournamentID int, minPlacement, maxPlacement *int) ([]*models.DancePerformance, error)
	Update(ctx context.Context, dance *models.DancePerformance) error
	Delete(ctx context.Context, id int) error
}

type postgresDanceRepository struct {
	db *sql.DB
}

func NewPostgresDanceRepository(db *sql.DB) DanceRepository {
	return &postgresDanceRepository{db: db}
}

func (r *postgresDanceRepository) Create(ctx context.Context, dance *models.DancePerformance) error {
	query := `
		INSERT INTO dance_performances (tournament_id, team_id, date, start_time, placement)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		dance.TournamentID, dance.TeamID, dance.Date, dance.StartTime, dance.Placement,
	).Scan(&dance.ID)
}

func (r *postgresDanceRepository) GetByID(ctx context.Context, id int) (*models.DancePerformance, error) {
	query := `
		SELECT id, tournament_id, team_id, date, start_time, placement
		FROM dance_performances WHERE id = $1`

	dance := &models.DancePerformance{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&dance.ID, &dance.TournamentID, &dance.TeamID, &dance.Date, &dance.StartTime, &dance.Placement,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDanceNotFound
		}
		return nil, err
	}
	return dance, nil
}

func (r *postgresDanceRepository) ListByTournament(ctx context.Context, tournamentID int, minPlacement, maxPlacement *int) ([]*models.DancePerformance, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, tournament_id, team_id, date, start_time, placement
		FROM dance_performances
		WHERE tournament_id = $1`)

	args := []interface{}{tournamentID}
	if minPlacement != nil {
		queryBuilder.WriteString(" AND placement >= $" + strconv.Itoa(len(args)+1))
		args = append(args, *minPlacement)
	}
	if maxPlacement != nil {
		queryBuilder.WriteString(" AND placement <= $" + strconv.Itoa(len(args)+1))
		args = append(args, *maxPlacement)
	}
	queryBuilder.WriteString(" ORDER BY placement ASC, date ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dances := make([]*models.DancePerformance, 0)
	for rows.Next() {
		var d models.DancePerformance
		if err := rows.Scan(&d.ID, &d.TournamentID, &d.TeamID, &d.Date, &d.StartTime, &d.Placement); err != nil {
			return nil, err
		}
		dances = append(dances, &d)
	}
	return dances, rows.Err()
}

func (r *postgresDanceRepository) Update(ctx context.Context, dance *models.DancePerformance) error {
	query := `
		UPDATE dance_performances
		SET team_id = $1, date = $2, start_time = $3, placement = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		dance.TeamID, dance.Date, dance.StartTime, dance.Placement, dance.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrDanceNotFound)
}

func (r *postgresDanceRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dance_performances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrDanceNotFound)
}
