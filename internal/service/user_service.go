package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/LudyPitra/AI-Diary-App/internal/domain"
	"github.com/LudyPitra/AI-Diary-App/internal/repo"
	"github.com/LudyPitra/AI-Diary-App/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so login errors never reveal which accounts exist.
var ErrInvalidCredentials = errors.New("incorrect email or password")

var ErrEmailTaken = errors.New("email already registered")

// UserService handles registration, credential checks and account resolution.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account with a bcrypt-hashed password. The email
// uniqueness pre-check is backstopped by the unique constraint on users.email;
// a violation that slips past the pre-check maps to the same ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return dom.User{}, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks email and password; returns the account if valid.
// The is_active flag is not consulted: nothing can deactivate an account.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetByEmail resolves a token subject to an account.
func (s *UserService) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	return s.repo.GetByEmail(ctx, email)
}
