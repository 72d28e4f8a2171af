package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/agroclima/agroclima-server/internal/dbx"
	"github.com/agroclima/agroclima-server/internal/server/models"
	"github.com/agroclima/agroclima-server/internal/server/repositories/repomanager"
)

// RecommendationService exposes CRUD over crop-recommendation records.
type RecommendationService struct {
	db          dbx.Database
	repomanager repomanager.RepositoryManager
}

func NewRecommendationService(db dbx.Database, m repomanager.RepositoryManager) *RecommendationService {
	return &RecommendationService{db: db, repomanager: m}
}

func (s *RecommendationService) List(ctx context.Context) ([]*models.Recommendation, error) {
	repo := s.repomanager.Recommendations(s.db)
	recs, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recommendations: %v", err)
	}
	return recs, nil
}

func (s *RecommendationService) Get(ctx context.Context, id int64) (*models.Recommendation, error) {
	repo := s.repomanager.Recommendations(s.db)
	rec, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error getting recommendation: %v", err)
	}
	return rec, nil
}

func (s *RecommendationService) Create(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error) {
	repo := s.repomanager.Recommendations(s.db)
	created, err := repo.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("error creating recommendation: %v", err)
	}
	return created, nil
}

func (s *RecommendationService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Recommendations(s.db)
	if _, err := repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error getting recommendation: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting recommendation: %v", err)
	}
	return nil
}
