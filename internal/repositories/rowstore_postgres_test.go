package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/skosovan/data-analyzer/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostgresTable_ReadAll(t *testing.T) {
	db, mock := newMockDB(t)
	table := repositories.NewPostgresTable(db, "users")

	rows := sqlmock.NewRows([]string{"cells"}).
		AddRow([]byte(`["username","password_hash","role"]`)).
		AddRow([]byte(`["alice","hash-a","user"]`))
	mock.ExpectQuery("SELECT cells FROM sheet_rows").
		WithArgs("users").
		WillReturnRows(rows)

	got, err := table.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"username", "password_hash", "role"},
		{"alice", "hash-a", "user"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTable_ReadAll_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	table := repositories.NewPostgresTable(db, "users")

	mock.ExpectQuery("SELECT cells FROM sheet_rows").
		WithArgs("users").
		WillReturnError(errors.New("connection reset"))

	_, err := table.ReadAll(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTable_Append(t *testing.T) {
	db, mock := newMockDB(t)
	table := repositories.NewPostgresTable(db, "uploads")

	mock.ExpectExec("INSERT INTO sheet_rows").
		WithArgs("uploads", []byte(`["alice","sales.csv","2026-03-01 09:30:00"]`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := table.Append(context.Background(), []string{"alice", "sales.csv", "2026-03-01 09:30:00"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTable_ReplaceAll(t *testing.T) {
	db, mock := newMockDB(t)
	table := repositories.NewPostgresTable(db, "users")

	mock.ExpectExec("DELETE FROM sheet_rows").
		WithArgs("users").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO sheet_rows").
		WithArgs("users", []byte(`["username","password_hash","role"]`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO sheet_rows").
		WithArgs("users", []byte(`["alice","hash-a","user"]`)).
		WillReturnResult(sqlmock.NewResult(2, 1))

	err := table.ReplaceAll(context.Background(), [][]string{
		{"username", "password_hash", "role"},
		{"alice", "hash-a", "user"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ReplaceAll runs delete and inserts as separate statements, so a failure
// mid-rewrite leaves the sheet partially written.
func TestPostgresTable_ReplaceAll_PartialFailure(t *testing.T) {
	db, mock := newMockDB(t)
	table := repositories.NewPostgresTable(db, "users")

	mock.ExpectExec("DELETE FROM sheet_rows").
		WithArgs("users").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO sheet_rows").
		WithArgs("users", []byte(`["username","password_hash","role"]`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO sheet_rows").
		WithArgs("users", []byte(`["alice","hash-a","user"]`)).
		WillReturnError(errors.New("connection reset"))

	err := table.ReplaceAll(context.Background(), [][]string{
		{"username", "password_hash", "role"},
		{"alice", "hash-a", "user"},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
