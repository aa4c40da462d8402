package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

const tokenTTL = 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (string, *models.StaffUser, error)
	Register(ctx context.Context, email, password string, role models.StaffRole) (*models.StaffUser, error)
}

type authService struct {
	staffRepo repositories.StaffRepository
	jwtSecret []byte
}

func NewAuthService(staffRepo repositories.StaffRepository, jwtSecret string) AuthService {
	return &authService{staffRepo: staffRepo, jwtSecret: []byte(jwtSecret)}
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (string, *models.StaffUser, error) {
	user, err := s.staffRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrStaffNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to fetch staff user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, user, nil
}

func (s *authService) Register(ctx context.Context, email, password string, role models.StaffRole) (*models.StaffUser, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.StaffUser{Email: email, PasswordHash: string(hash), Role: role}
	if err := s.staffRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
