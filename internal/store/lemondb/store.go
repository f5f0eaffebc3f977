// Package lemondb persists scanner state in an embedded LemonDB file.
// The whole state lives under a single document key, read-modify-written
// atomically per operation.
package lemondb

import (
	"context"
	"os"
	"path/filepath"

	"github.com/denismitr/lemon"
	"github.com/pkg/errors"

	"coopman/internal/model"
	"coopman/internal/store"
)

const stateKey = "state"

// Store implements store.GameStore on top of a LemonDB file.
type Store struct {
	db     *lemon.DB
	closer lemon.Closer
}

var _ store.GameStore = (*Store)(nil)

// Open creates or opens the database file at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	db, closer, err := lemon.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", path)
	}
	return &Store{db: db, closer: closer}, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.closer()
}

// LoadState reads the persisted state. A database with no saved state yet
// yields an empty state, not an error.
func (s *Store) LoadState(ctx context.Context) (*model.State, error) {
	state := model.NewState()
	err := s.db.View(ctx, func(tx *lemon.Tx) error {
		doc, err := tx.Get(stateKey)
		if err != nil {
			return err
		}
		return doc.JSON().Unmarshal(state)
	})
	if err != nil {
		if errors.Is(err, lemon.ErrKeyDoesNotExist) {
			return model.NewState(), nil
		}
		return nil, errors.Wrap(err, "load state")
	}
	if state.Games == nil {
		state.Games = make(map[string]model.Game)
	}
	return state, nil
}

// SaveState replaces the persisted state.
func (s *Store) SaveState(ctx context.Context, state *model.State) error {
	err := s.db.Update(ctx, func(tx *lemon.Tx) error {
		return tx.InsertOrReplace(stateKey, state)
	})
	return errors.Wrap(err, "save state")
}
