package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/agroclima/agroclima-server/internal/dbx"
	"github.com/agroclima/agroclima-server/internal/server/models"
	"github.com/agroclima/agroclima-server/internal/server/repositories/repomanager"
	"github.com/agroclima/agroclima-server/internal/server/storage"
)

// Upload is one photo received from a multipart request.
type Upload struct {
	ContentType string
	Body        io.Reader
}

// ProductService exposes CRUD over product listings. Creating a product
// uploads its photo to object storage first and compensates (deletes the
// object) when the subsequent database insert fails, so no orphaned objects
// are left behind.
type ProductService struct {
	db          dbx.Database
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
}

func NewProductService(db dbx.Database, m repomanager.RepositoryManager, store storage.ObjectStore) *ProductService {
	return &ProductService{db: db, repomanager: m, store: store}
}

func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	repo := s.repomanager.Products(s.db)
	items, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %v", err)
	}
	return items, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	repo := s.repomanager.Products(s.db)
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error getting product: %v", err)
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, name, price, description string, photo *Upload) (*models.Product, error) {
	key := storage.MakeStorageKey()
	url, err := s.store.Upload(ctx, key, photo.ContentType, photo.Body)
	if err != nil {
		return nil, fmt.Errorf("error uploading photo: %v", err)
	}

	p := &models.Product{Name: name, Price: price, Description: description, Photo: url}
	repo := s.repomanager.Products(s.db)
	created, err := repo.Create(ctx, p)
	if err != nil {
		// compensation: the row never landed, remove the uploaded object
		_ = s.store.Delete(ctx, key)
		return nil, fmt.Errorf("error creating product: %v", err)
	}

	return created, nil
}

// Delete removes the row and then best-effort deletes the photo object.
// A failed object delete is not surfaced: the row is already gone.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Products(s.db)
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error getting product: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting product: %v", err)
	}

	if key, ok := s.store.KeyFromURL(p.Photo); ok {
		_ = s.store.Delete(ctx, key)
	}

	return nil
}
