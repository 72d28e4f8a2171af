package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/agroclima/agroclima-server/internal/dbx"
	"github.com/agroclima/agroclima-server/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Article, error) {
	query :=
		`SELECT id, title, description, photo FROM articles
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var items []*models.Article
	for rows.Next() {
		a := &models.Article{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Photo); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	query :=
		`SELECT id, title, description, photo FROM articles
		 WHERE id = $1
		 `

	a := &models.Article{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Title, &a.Description, &a.Photo)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	query :=
		`INSERT INTO articles (title, description, photo)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		article.Title, article.Description, article.Photo).Scan(&article.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return article, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM articles
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
