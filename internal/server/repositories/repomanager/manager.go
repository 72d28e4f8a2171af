// Package repomanager hands out repositories bound to a DB handle and runs
// schema migrations at startup.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/agroclima/agroclima-server/internal/dbx"
	"github.com/agroclima/agroclima-server/internal/server/repositories/articles"
	"github.com/agroclima/agroclima-server/internal/server/repositories/products"
	"github.com/agroclima/agroclima-server/internal/server/repositories/recommendations"
	"github.com/agroclima/agroclima-server/internal/server/repositories/users"
)

// RepositoryManager builds repositories over the given handle, which may be
// the shared *sql.DB or a transaction from dbx.WithTx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Recommendations(db dbx.DBTX) recommendations.Repository
	Products(db dbx.DBTX) products.Repository
	Articles(db dbx.DBTX) articles.Repository

	RunMigrations(ctx context.Context, db *sql.DB) error
}
