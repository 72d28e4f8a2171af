// Package products persists product listings.
package products

import (
	"context"

	"github.com/agroclima/agroclima-server/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}
