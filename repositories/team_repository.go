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
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameYearTaken = errors.New("team name already taken for this year")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context, year *int) ([]*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	// Delete removes the team; matches referencing it as winner or
	// walkover team keep existing with those references nulled by the
	// schema.
	Delete(ctx context.Context, id int) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `INSERT INTO teams (name, year, grade) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, team.Name, team.Year, team.Grade).Scan(&team.ID)
	return handleTeamError(err)
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT id, name, year, grade FROM teams WHERE id = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&team.ID, &team.Name, &team.Year, &team.Grade)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *postgresTeamRepository) List(ctx context.Context, year *int) ([]*models.Team, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, name, year, grade FROM teams`)

	args := []interface{}{}
	if year != nil {
		queryBuilder.WriteString(" WHERE year = $" + strconv.Itoa(len(args)+1))
		args = append(args, *year)
	}
	queryBuilder.WriteString(" ORDER BY year DESC, name ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Year, &t.Grade); err != nil {
			return nil, err
		}
		teams = append(teams, &t)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET name = $1, year = $2, grade = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, team.Name, team.Year, team.Grade, team.ID)
	if err != nil {
		return handleTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func handleTeamError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23505" && pqErr.Constraint == "teams_name_year_key" {
			return ErrTeamNameYearTaken
		}
	}
	return err
}
