// Package store gives typed access to the four collections TreeKeeper keeps
// on the device: accounts, the active-session marker, tree logs and reports.
//
// Every collection is one JSON value under a fixed key of a kv.Repository.
// A value that fails to decode is treated as an empty collection: the
// failure is logged and never returned. Only errors of the underlying
// repository reach the caller.
//
// Writes replace the whole collection and are visible to the next read.
// There is no atomicity across collections.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/treekeeper/internal/client/models"
	"github.com/dmitrijs2005/treekeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/treekeeper/internal/common"
	"github.com/dmitrijs2005/treekeeper/internal/logging"
)

// Collection keys.
const (
	KeyAccounts      = "accounts"
	KeyActiveSession = "active-session"
	KeyTreeLogs      = "tree-logs"
	KeyReports       = "reports"
)

type Store struct {
	repo kv.Repository
	log  logging.Logger
}

func New(repo kv.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// ReadAccounts returns all accounts keyed by id. The map is never nil.
func (s *Store) ReadAccounts(ctx context.Context) (map[string]*models.Account, error) {
	var accounts map[string]*models.Account
	ok, err := s.read(ctx, KeyAccounts, &accounts)
	if err != nil {
		return nil, err
	}
	if !ok || accounts == nil {
		accounts = make(map[string]*models.Account)
	}
	for id, a := range accounts {
		if a == nil {
			delete(accounts, id)
		}
	}
	return accounts, nil
}

func (s *Store) WriteAccounts(ctx context.Context, accounts map[string]*models.Account) error {
	return s.write(ctx, KeyAccounts, accounts)
}

func (s *Store) ReadTreeLogs(ctx context.Context) ([]models.TreeLogEntry, error) {
	return readList[models.TreeLogEntry](ctx, s, KeyTreeLogs)
}

func (s *Store) WriteTreeLogs(ctx context.Context, entries []models.TreeLogEntry) error {
	return writeList(ctx, s, KeyTreeLogs, entries)
}

func (s *Store) ReadReports(ctx context.Context) ([]models.ReportEntry, error) {
	return readList[models.ReportEntry](ctx, s, KeyReports)
}

func (s *Store) WriteReports(ctx context.Context, entries []models.ReportEntry) error {
	return writeList(ctx, s, KeyReports, entries)
}

// ReadActiveSession returns the persisted account id, or "" when no
// session marker is stored.
func (s *Store) ReadActiveSession(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, KeyActiveSession)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) WriteActiveSession(ctx context.Context, accountID string) error {
	return s.repo.Set(ctx, KeyActiveSession, []byte(accountID))
}

func (s *Store) ClearActiveSession(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyActiveSession)
}

func readList[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	var list []T
	ok, err := s.read(ctx, key, &list)
	if err != nil {
		return nil, err
	}
	if !ok || list == nil {
		list = make([]T, 0)
	}
	return list, nil
}

func writeList[T any](ctx context.Context, s *Store, key string, list []T) error {
	if list == nil {
		list = make([]T, 0)
	}
	return s.write(ctx, key, list)
}

// read decodes key into dst and reports whether dst holds a usable value.
// It is false for a missing key and for an undecodable one; in the latter
// case dst may be partially filled and must be discarded.
func (s *Store) read(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn(ctx, "discarding unreadable collection",
			"key", key, "error", fmt.Errorf("%w: %v", common.ErrCorruptStore, err))
		return false, nil
	}
	return true, nil
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.repo.Set(ctx, key, raw)
}
