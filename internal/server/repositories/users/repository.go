// Package users provides persistence for user records, including the
// single-slot refresh-token column used by the auth flow.
package users

import (
	"context"

	"github.com/agroclima/agroclima-server/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the full record (including the password hash) for login.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the public profile fields.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// List returns the public profile fields of all users.
	List(ctx context.Context) ([]*models.User, error)

	// UpdateRefreshToken overwrites the stored refresh token for the user.
	// The previous token stops matching any row and is thereby invalidated.
	UpdateRefreshToken(ctx context.Context, userID int64, token string) error

	// FindByRefreshToken returns the user whose stored refresh token equals
	// token, or common.ErrorNotFound.
	FindByRefreshToken(ctx context.Context, token string) (*models.User, error)

	// ClearRefreshToken nulls the stored token wherever it matches. Clearing
	// an unknown token is not an error (logout is idempotent).
	ClearRefreshToken(ctx context.Context, token string) error
}
