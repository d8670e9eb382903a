package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:session?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	// empty store
	token, err := store.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.False(t, store.Present(ctx))

	// set
	require.NoError(t, store.Set(ctx, "tok-1"))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.True(t, store.Present(ctx))

	// overwrite
	require.NoError(t, store.Set(ctx, "tok-2"))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)

	// clear
	require.NoError(t, store.Clear(ctx))
	require.False(t, store.Present(ctx))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestPeekIdentity(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	id := PeekIdentity(signed)
	require.Equal(t, "alice", id.Subject)
	require.Equal(t, exp.Unix(), id.ExpiresAt.Unix())
}

func TestPeekIdentity_MalformedToken(t *testing.T) {
	require.Equal(t, Identity{}, PeekIdentity(""))
	require.Equal(t, Identity{}, PeekIdentity("not-a-jwt"))
}
