package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/agroclima/agroclima-server/internal/common"
	"github.com/agroclima/agroclima-server/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(name,\s*email,\s*no_hp,\s*password\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id"}).AddRow(42)
	mock.ExpectQuery(q).
		WithArgs("Ann", "ann@x.com", "0800", "hashed").
		WillReturnRows(rows)

	u := &models.User{Name: "Ann", Email: "ann@x.com", Phone: "0800", PasswordHash: "hashed"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Email != "ann@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WithArgs("Ann", "ann@x.com", "0800", "hashed").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_uq"})

	_, err := repo.Create(context.Background(), &models.User{Name: "Ann", Email: "ann@x.com", Phone: "0800", PasswordHash: "hashed"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Name: "Ann", Email: "ann@x.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "no_hp", "password"}).
		AddRow(1, "Ann", "ann@x.com", "0800", "hashed")
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*email,\s*no_hp,\s*password\s+FROM\s+users\s+WHERE\s+email`).
		WithArgs("ann@x.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "ann@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != 1 || got.PasswordHash != "hashed" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*email,\s*no_hp,\s*password\s+FROM\s+users`).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "no_hp"}).
		AddRow(7, "Bob", "bob@x.com", "0801")
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*email,\s*no_hp\s+FROM\s+users\s+WHERE\s+id`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Name != "Bob" || got.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "no_hp"}).
		AddRow(1, "Ann", "ann@x.com", "0800").
		AddRow(2, "Bob", "bob@x.com", "0801")
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*email,\s*no_hp\s+FROM\s+users\s+ORDER\s+BY\s+id`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Ann" || got[1].Name != "Bob" {
		t.Fatalf("unexpected users: %+v", got)
	}
}

func TestUpdateRefreshToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET\s+refresh_token\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(1), "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateRefreshToken(context.Background(), 1, "tok"); err != nil {
		t.Fatalf("UpdateRefreshToken error: %v", err)
	}
}

func TestFindByRefreshToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "no_hp"}).
		AddRow(1, "Ann", "ann@x.com", "0800")
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*email,\s*no_hp\s+FROM\s+users\s+WHERE\s+refresh_token`).
		WithArgs("tok").
		WillReturnRows(rows)

	got, err := repo.FindByRefreshToken(context.Background(), "tok")
	if err != nil {
		t.Fatalf("FindByRefreshToken error: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("unexpected user: %+v", got)
	}

	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*email,\s*no_hp\s+FROM\s+users\s+WHERE\s+refresh_token`).
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.FindByRefreshToken(context.Background(), "unknown"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestClearRefreshToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET\s+refresh_token\s*=\s*NULL\s+WHERE\s+refresh_token\s*=\s*\$1`).
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearRefreshToken(context.Background(), "tok"); err != nil {
		t.Fatalf("ClearRefreshToken error: %v", err)
	}
}
