// Package services contains server-side business logic. This file implements
// UserService: registration, login, refresh-token rotation, logout and the
// protected user listings.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/agroclima/agroclima-server/internal/dbx"
	"github.com/agroclima/agroclima-server/internal/server/auth"
	"github.com/agroclima/agroclima-server/internal/server/config"
	"github.com/agroclima/agroclima-server/internal/server/models"
	"github.com/agroclima/agroclima-server/internal/server/repositories/repomanager"
)

// Registration validation errors. Both match common.ErrorValidation via
// errors.Is.
var (
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", common.ErrorValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters", common.ErrorValidation)
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations:
//   - Register: validate and create users
//   - Login: verify credentials, mint tokens, persist the refresh token
//   - Refresh: verify the cookie token and rotate it
//   - Logout: clear the stored refresh token
//
// The user row holds a single refresh-token slot, so every login or refresh
// implicitly invalidates the previously issued refresh token.
type UserService struct {
	db                           dbx.Database
	repomanager                  repomanager.RepositoryManager
	accessSecret                 []byte
	refreshSecret                []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db dbx.Database, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		accessSecret:                 []byte(cfg.AccessSecretKey),
		refreshSecret:                []byte(cfg.RefreshSecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// RefreshTokenValidity exposes the refresh lifetime so the transport layer
// can align the cookie Max-Age with it.
func (s *UserService) RefreshTokenValidity() time.Duration {
	return s.refreshTokenValidityDuration
}

// Register validates the password pair, hashes the password and creates the
// user. A duplicate email surfaces as common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, email, phone, password, confirmPassword string) (*models.User, error) {
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: error hashing password: %v", common.ErrorInternal, err)
	}

	user := &models.User{Name: name, Email: email, Phone: phone, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns the user together
// with a fresh token pair. The refresh token is persisted on the user row,
// overwriting whatever was there (last login wins).
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorNotFound
		}
		return nil, nil, fmt.Errorf("%w: error finding user: %v", common.ErrorInternal, err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error generating tokens: %v", common.ErrorInternal, err)
	}
	if err := repo.UpdateRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, nil, fmt.Errorf("%w: error storing refresh token: %v", common.ErrorInternal, err)
	}

	return user, pair, nil
}

// Refresh validates a refresh token against both the stored value and its
// signature/expiry, then rotates it: a new refresh token replaces the stored
// one, so the presented token cannot be replayed. Lookup and rotation run in
// one transaction so a concurrent refresh of the same token cannot interleave
// between them.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.FindByRefreshToken(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorForbidden
			}
			return fmt.Errorf("%w: error finding refresh token: %v", common.ErrorInternal, err)
		}

		if _, err := auth.ParseToken(refreshToken, s.refreshSecret); err != nil {
			return common.ErrorForbidden
		}

		p, err := s.generateTokenPair(user)
		if err != nil {
			return fmt.Errorf("%w: error generating tokens: %v", common.ErrorInternal, err)
		}
		if err := repo.UpdateRefreshToken(ctx, user.ID, p.RefreshToken); err != nil {
			return fmt.Errorf("%w: error storing refresh token: %v", common.ErrorInternal, err)
		}

		pair = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pair, nil
}

// Logout clears the stored refresh token matching the presented one.
// Unknown tokens are ignored: logging out twice is fine.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	repo := s.repomanager.Users(s.db)
	if err := repo.ClearRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("%w: error clearing refresh token: %v", common.ErrorInternal, err)
	}
	return nil
}

// List returns the public profiles of all users.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)
	users, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %v", err)
	}
	return users, nil
}

// Get returns one public profile or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error getting user: %v", err)
	}
	return user, nil
}

// --- helpers below ---

func (s *UserService) generateTokenPair(user *models.User) (*TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.Name, user.Email, user.Phone, s.accessSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateToken(user.ID, user.Name, user.Email, user.Phone, s.refreshSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
