package recommendations

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Recommendation, error) {
	query :=
		`SELECT id, n, p, k, temperature, humidity, ph, rainfall FROM recommendation
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var recs []*models.Recommendation
	for rows.Next() {
		rec := &models.Recommendation{}
		if err := rows.Scan(&rec.ID, &rec.N, &rec.P, &rec.K, &rec.Temperature, &rec.Humidity, &rec.PH, &rec.Rainfall); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recs, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Recommendation, error) {
	query :=
		`SELECT id, n, p, k, temperature, humidity, ph, rainfall FROM recommendation
		 WHERE id = $1
		 `

	rec := &models.Recommendation{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rec.ID, &rec.N, &rec.P, &rec.K, &rec.Temperature, &rec.Humidity, &rec.PH, &rec.Rainfall)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.Recommendation) (*models.Recommendation, error) {
	query :=
		`INSERT INTO recommendation (n, p, k, temperature, humidity, ph, rainfall)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		rec.N, rec.P, rec.K, rec.Temperature, rec.Humidity, rec.PH, rec.Rainfall).Scan(&rec.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM recommendation
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
