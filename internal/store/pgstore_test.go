package store

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPGMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS portal_kv").WillReturnResult(sqlmock.NewResult(0, 0))
	pg, err := NewPostgresStore(sqlx.NewDb(db, "sqlmock"))
	require.NoError(t, err)
	return pg, mock, func() { db.Close() }
}

func TestPostgresStoreGet(t *testing.T) {
	pg, mock, cleanup := newPGMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM portal_kv WHERE key = $1 LIMIT 1")).
		WithArgs(KeyMarks).
		WillReturnRows(rows)

	raw, ok, err := pg.Get(context.Background(), KeyMarks)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), raw)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetMissing(t *testing.T) {
	pg, mock, cleanup := newPGMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM portal_kv WHERE key = $1 LIMIT 1")).
		WithArgs(KeyCurrent).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, ok, err := pg.Get(context.Background(), KeyCurrent)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSet(t *testing.T) {
	pg, mock, cleanup := newPGMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO portal_kv").
		WithArgs(KeyAccounts, []byte(`{}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := pg.Set(context.Background(), KeyAccounts, []byte(`{}`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreDelete(t *testing.T) {
	pg, mock, cleanup := newPGMock(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM portal_kv").
		WithArgs(KeyCurrent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := pg.Delete(context.Background(), KeyCurrent)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
