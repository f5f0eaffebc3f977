// Package store defines the persistence contract for scanner state.
package store

import (
	"context"

	"coopman/internal/model"
)

// GameStore persists the discovered-games state between runs.
// LoadState returns an empty state, not an error, when nothing was saved yet.
type GameStore interface {
	LoadState(ctx context.Context) (*model.State, error)
	SaveState(ctx context.Context, state *model.State) error
}
