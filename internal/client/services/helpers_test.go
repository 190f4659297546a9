package services

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/treekeeper/internal/client/client"
	"github.com/dmitrijs2005/treekeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/treekeeper/internal/client/store"
	"github.com/dmitrijs2005/treekeeper/internal/logging"
)

// ---- helpers ----

type env struct {
	db       *sql.DB
	dsn      string
	store    *store.Store
	accounts AccountDirectory
	session  *SessionController
	activity ActivityService
}

func openStore(t *testing.T, dsn string) (*sql.DB, *store.Store) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, store.New(kv.NewSQLiteRepository(db), logging.Nop())
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return newEnvAt(t, filepath.Join(t.TempDir(), "treekeeper.db"))
}

// newEnvAt wires the services over the database file at dsn. Calling it
// twice with the same dsn simulates a process restart.
func newEnvAt(t *testing.T, dsn string) *env {
	t.Helper()
	db, st := openStore(t, dsn)
	log := logging.Nop()

	accounts := NewAccountDirectory(st, log)
	session := NewSessionController(st, accounts, log)
	return &env{
		db:       db,
		dsn:      dsn,
		store:    st,
		accounts: accounts,
		session:  session,
		activity: NewActivityService(st, session, log),
	}
}

// stubIDs replaces newID with a predictable sequence.
func stubIDs(t *testing.T, prefix string) {
	t.Helper()
	orig := newID
	n := 0
	newID = func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
	t.Cleanup(func() { newID = orig })
}

func stubNow(t *testing.T, ts time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = orig })
}
