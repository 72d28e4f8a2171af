// Package articles persists editorial articles.
package articles

import (
	"context"

	"github.com/agroclima/agroclima-server/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}
