// Package recommendations persists crop-recommendation records.
package recommendations

import (
	"context"

	"github.com/agroclima/agroclima-server/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Recommendation, error)
	GetByID(ctx context.Context, id int64) (*models.Recommendation, error)
	Create(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error)
	Delete(ctx context.Context, id int64) error
}
