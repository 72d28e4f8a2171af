package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/agroclima/agroclima-server/internal/dbx"
	"github.com/agroclima/agroclima-server/internal/server/models"
	"github.com/agroclima/agroclima-server/internal/server/repositories/repomanager"
	"github.com/agroclima/agroclima-server/internal/server/storage"
)

// ArticleService exposes CRUD over articles with the same upload-then-insert
// compensation flow as products.
type ArticleService struct {
	db          dbx.Database
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
}

func NewArticleService(db dbx.Database, m repomanager.RepositoryManager, store storage.ObjectStore) *ArticleService {
	return &ArticleService{db: db, repomanager: m, store: store}
}

func (s *ArticleService) List(ctx context.Context) ([]*models.Article, error) {
	repo := s.repomanager.Articles(s.db)
	items, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing articles: %v", err)
	}
	return items, nil
}

func (s *ArticleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	repo := s.repomanager.Articles(s.db)
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error getting article: %v", err)
	}
	return a, nil
}

func (s *ArticleService) Create(ctx context.Context, title, description string, photo *Upload) (*models.Article, error) {
	key := storage.MakeStorageKey()
	url, err := s.store.Upload(ctx, key, photo.ContentType, photo.Body)
	if err != nil {
		return nil, fmt.Errorf("error uploading photo: %v", err)
	}

	a := &models.Article{Title: title, Description: description, Photo: url}
	repo := s.repomanager.Articles(s.db)
	created, err := repo.Create(ctx, a)
	if err != nil {
		_ = s.store.Delete(ctx, key)
		return nil, fmt.Errorf("error creating article: %v", err)
	}

	return created, nil
}

func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Articles(s.db)
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error getting article: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting article: %v", err)
	}

	if key, ok := s.store.KeyFromURL(a.Photo); ok {
		_ = s.store.Delete(ctx, key)
	}

	return nil
}
