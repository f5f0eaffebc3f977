package lemondb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopman/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "coopman.ldb"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadStateEmpty(t *testing.T) {
	s := openTestStore(t)

	state, err := s.LoadState(context.Background())
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Empty(t, state.Games)
	assert.Nil(t, state.LastScan)
}

func TestSaveAndLoadState(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	in := model.NewState()
	in.LastScan = &now
	in.Games["er"] = model.Game{
		ID:           "er",
		Name:         "Elden Ring",
		SteamAppID:   1245620,
		InstallPath:  `C:\Games\ELDEN RING`,
		ModInstalled: true,
		ModVersion:   "1.7.8",
	}

	require.NoError(t, s.SaveState(ctx, in))

	out, err := s.LoadState(ctx)
	require.NoError(t, err)
	require.Contains(t, out.Games, "er")
	assert.Equal(t, in.Games["er"], out.Games["er"])
	require.NotNil(t, out.LastScan)
	assert.True(t, out.LastScan.Equal(now))
}

func TestSaveStateOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := model.NewState()
	first.Games["er"] = model.Game{ID: "er", Name: "Elden Ring"}
	require.NoError(t, s.SaveState(ctx, first))

	second := model.NewState()
	second.Games["ds3"] = model.Game{ID: "ds3", Name: "Dark Souls III"}
	require.NoError(t, s.SaveState(ctx, second))

	out, err := s.LoadState(ctx)
	require.NoError(t, err)
	assert.NotContains(t, out.Games, "er")
	assert.Contains(t, out.Games, "ds3")
}
