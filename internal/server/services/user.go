// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskdeck/internal/common"
	"taskdeck/internal/cryptox"
	"taskdeck/internal/server/auth"
	"taskdeck/internal/server/config"
	"taskdeck/internal/server/models"
	"taskdeck/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with hashed credentials
// - Login: verify credentials and mint a bearer token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Register creates a new user with the given email and password. The password
// is hashed before it reaches storage; the plaintext is never persisted.
// Returns common.ErrorValidation for malformed input and
// common.ErrorAlreadyExists when the email is taken.
func (s *UserService) Register(ctx context.Context, email string, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") || password == "" {
		return nil, common.ErrorValidation
	}

	digest, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(email),
		PasswordHash: digest,
	}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a signed bearer
// token. Unknown email and wrong password both yield common.ErrorUnauthorized
// so callers cannot probe which emails are registered.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if !cryptox.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
