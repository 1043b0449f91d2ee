package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE keystore (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteKV(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte(`{"id":"1"}`)))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), v)
}

func TestSet_UpsertOverwrites(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteKV(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte("a")))
	require.NoError(t, r.Set(ctx, "k1", []byte("b")))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), v)
}

func TestGet_MissingKeyReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteKV(db)

	v, err := r.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDelete_RemovesKeyAndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteKV(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte("a")))
	require.NoError(t, r.Delete(ctx, "k1"))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Nil(t, v)

	// deleting a missing key is not an error
	require.NoError(t, r.Delete(ctx, "k1"))
}

func TestList_ReturnsAllPairs(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteKV(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, m)
}

func TestClear_EmptiesStore(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteKV(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Clear(ctx))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestOpen_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, "file:opentest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := NewSQLiteKV(db)
	require.NoError(t, r.Set(ctx, "user", []byte("{}")))
}
