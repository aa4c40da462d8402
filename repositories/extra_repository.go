package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/placarjuarez/placar-api/models"
)

var ErrExtraNotFound = errors.New("point entry not found")

type ExtraRepository interface {
	Create(ctx context.Context, extra *models.Extra) error
	GetByID(ctx context.Context, id int) (*models.Extra, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Extra, error)
	// Update never touches created_at; the recorded timestamp is
	// immutable.
	Update(ctx context.Context, extra *models.Extra) error
	Delete(ctx context.Context, id int) error
}

type postgresExtraRepository struct {
	db *sql.DB
}

func NewPostgresExtraRepository(db *sql.DB) ExtraRepository {
	return &postgresExtraRepository{db: db}
}

func (r *postgresExtraRepository) Create(ctx context.Context, extra *models.Extra) error {
	query := `
		INSERT INTO extras (tournament_id, team_id, kind, points, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		extra.TournamentID, extra.TeamID, extra.Kind, extra.Points, extra.Note,
	).Scan(&extra.ID, &extra.CreatedAt)
}

func (r *postgresExtraRepository) GetByID(ctx context.Context, id int) (*models.Extra, error) {
	query := `
		SELECT id, tournament_id, team_id, kind, points, note, created_at
		FROM extras WHERE id = $1`

	extra := &models.Extra{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&extra.ID, &extra.TournamentID, &extra.TeamID, &extra.Kind, &extra.Points, &extra.Note, &extra.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExtraNotFound
		}
		return nil, err
	}
	return extra, nil
}

func (r *postgresExtraRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Extra, error) {
	query := `
		SELECT id, tournament_id, team_id, kind, points, note, created_at
		FROM extras
		WHERE tournament_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := make([]*models.Extra, 0)
	for rows.Next() {
		var e models.Extra
		if err := rows.Scan(&e.ID, &e.TournamentID, &e.TeamID, &e.Kind, &e.Points, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		extras = append(extras, &e)
	}
	return extras, rows.Err()
}

func (r *postgresExtraRepository) Update(ctx context.Context, extra *models.Extra) error {
	query := `UPDATE extras SET team_id = $1, kind = $2, points = $3, note = $4 WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		extra.TeamID, extra.Kind, extra.Points, extra.Note, extra.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrExtraNotFound)
}

func (r *postgresExtraRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM extras WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrExtraNotFound)
}
