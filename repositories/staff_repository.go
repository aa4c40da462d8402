package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/placarjuarez/placar-api/models"
)

var (
	ErrStaffNotFound   = errors.New("staff user not found")
	ErrStaffEmailTaken = errors.New("staff email already in use")
)

type StaffRepository interface {
	Create(ctx context.Context, user *models.StaffUser) error
	GetByEmail(ctx context.Context, email string) (*models.StaffUser, error)
}

type postgresStaffRepository struct {
	db *sql.DB
}

func NewPostgresStaffRepository(db *sql.DB) StaffRepository {
	return &postgresStaffRepository{db: db}
}

func (r *postgresStaffRepository) Create(ctx context.Context, user *models.StaffUser) error {
	query := `
		INSERT INTO staff_users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrStaffEmailTaken
		}
		return err
	}
	return nil
}

func (r *postgresStaffRepository) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM staff_users WHERE email = $1`

	user := &models.StaffUser{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return user, nil
}
