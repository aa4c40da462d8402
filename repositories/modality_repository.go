package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/placarjuarez/placar-api/models"
)

var ErrModalityNotFound = errors.New("modality not found")

type ModalityRepository interface {
	Create(ctx context.Context, modality *models.Modality) error
	GetByID(ctx context.Context, id int) (*models.Modality, error)
	List(ctx context.Context) ([]*models.Modality, error)
	Update(ctx context.Context, modality *models.Modality) error
	Delete(ctx context.Context, id int) error
}

type postgresModalityRepository struct {
	db *sql.DB
}

func NewPostgresModalityRepository(db *sql.DB) ModalityRepository {
	return &postgresModalityRepository{db: db}
}

func (r *postgresModalityRepository) Create(ctx context.Context, modality *models.Modality) error {
	query := `
		INSERT INTO modalities (name, category, has_score, has_sets)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		modality.Name, modality.Category, modality.HasScore, modality.HasSets,
	).Scan(&modality.ID)
}

func (r *postgresModalityRepository) GetByID(ctx context.Context, id int) (*models.Modality, error) {
	query := `SELECT id, name, category, has_score, has_sets FROM modalities WHERE id = $1`

	modality := &models.Modality{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&modality.ID, &modality.Name, &modality.Category, &modality.HasScore, &modality.HasSets,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrModalityNotFound
		}
		return nil, err
	}
	return modality, nil
}

func (r *postgresModalityRepository) List(ctx context.Context) ([]*models.Modality, error) {
	query := `SELECT id, name, category, has_score, has_sets FROM modalities ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modalities := make([]*models.Modality, 0)
	for rows.Next() {
		var m models.Modality
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.HasScore, &m.HasSets); err != nil {
			return nil, err
		}
		modalities = append(modalities, &m)
	}
	return modalities, rows.Err()
}

func (r *postgresModalityRepository) Update(ctx context.Context, modality *models.Modality) error {
	query := `
		UPDATE modalities
		SET name = $1, category = $2, has_score = $3, has_sets = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		modality.Name, modality.Category, modality.HasScore, modality.HasSets, modality.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrModalityNotFound)
}

func (r *postgresModalityRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM modalities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrModalityNotFound)
}
