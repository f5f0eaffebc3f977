package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coopman/internal/model"
	"coopman/internal/steam"
	"coopman/internal/store/mocks"
)

// installEldenRing lays out a minimal valid Elden Ring install and returns
// its install dir.
func installEldenRing(t *testing.T) string {
	t.Helper()
	lib := t.TempDir()
	installDir := filepath.Join(lib, "steamapps", "common", "ELDEN RING")
	require.NoError(t, os.MkdirAll(installDir, 0o755))
	manifest := filepath.Join(lib, "steamapps", fmt.Sprintf("appmanifest_%d.acf", 1245620))
	require.NoError(t, os.WriteFile(manifest, []byte(`"AppState" {}`), 0o644))
	return installDir
}

func installMod(t *testing.T, installDir string) string {
	t.Helper()
	modDir := filepath.Join(installDir, "Game", "SeamlessCoop")
	require.NoError(t, os.MkdirAll(modDir, 0o755))
	cfg := filepath.Join(modDir, "ersc_settings.ini")
	require.NoError(t, os.WriteFile(cfg, []byte("[GAMEPLAY]\nallow_invaders = 1\n"), 0o644))
	return cfg
}

func stateWith(games ...model.Game) *model.State {
	st := model.NewState()
	for _, g := range games {
		st.Games[g.ID] = g
	}
	return st
}

func newTestGameService(st *mocks.MockGameStore) *gameService {
	scanner := &steam.Scanner{Roots: []string{"/nonexistent"}, AppDataDir: "/nonexistent"}
	return NewGameService(st, scanner, nil, "").(*gameService)
}

func TestListPrunesMissingInstalls(t *testing.T) {
	installDir := installEldenRing(t)

	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(stateWith(
		model.Game{ID: "er", Name: "Elden Ring", SteamAppID: 1245620, InstallPath: installDir},
		model.Game{ID: "ds3", Name: "Dark Souls III", SteamAppID: 374320, InstallPath: "/gone/DARK SOULS III"},
	), nil)
	st.On("SaveState", mock.Anything, mock.Anything).Return(nil)

	svc := newTestGameService(st)
	games, _, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, games, 1)
	assert.Equal(t, "er", games[0].ID)
	st.AssertCalled(t, "SaveState", mock.Anything, mock.Anything)
}

func TestListRefreshesModPresence(t *testing.T) {
	installDir := installEldenRing(t)
	installMod(t, installDir)

	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(stateWith(
		model.Game{ID: "er", Name: "Elden Ring", SteamAppID: 1245620, InstallPath: installDir},
	), nil)
	st.On("SaveState", mock.Anything, mock.Anything).Return(nil)

	svc := newTestGameService(st)
	games, _, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, games, 1)
	assert.True(t, games[0].ModInstalled)
	assert.NotEmpty(t, games[0].ConfigPath)
}

func TestListNoChangesSkipsSave(t *testing.T) {
	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(model.NewState(), nil)

	svc := newTestGameService(st)
	games, _, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Empty(t, games)
	st.AssertNotCalled(t, "SaveState", mock.Anything, mock.Anything)
}

func TestGetUnknownGame(t *testing.T) {
	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(model.NewState(), nil)

	svc := newTestGameService(st)
	_, err := svc.Get(context.Background(), "er")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestSettingsRequiresMod(t *testing.T) {
	installDir := installEldenRing(t)

	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(stateWith(
		model.Game{ID: "er", SteamAppID: 1245620, InstallPath: installDir},
	), nil)

	svc := newTestGameService(st)
	_, err := svc.Settings(context.Background(), "er")
	assert.ErrorIs(t, err, ErrModNotInstalled)
}

func TestSettingsParsesConfig(t *testing.T) {
	installDir := installEldenRing(t)
	installMod(t, installDir)

	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(stateWith(
		model.Game{ID: "er", SteamAppID: 1245620, InstallPath: installDir},
	), nil)

	svc := newTestGameService(st)
	sections, err := svc.Settings(context.Background(), "er")
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, "GAMEPLAY", sections[0].Name)
	require.Len(t, sections[0].Settings, 1)
	assert.Equal(t, "allow_invaders", sections[0].Settings[0].Key)
}

func TestSaveSettingsWritesValues(t *testing.T) {
	installDir := installEldenRing(t)
	cfg := installMod(t, installDir)

	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(stateWith(
		model.Game{ID: "er", SteamAppID: 1245620, InstallPath: installDir},
	), nil)

	svc := newTestGameService(st)
	err := svc.SaveSettings(context.Background(), "er", map[string]string{"allow_invaders": "0"})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "allow_invaders = 0")
}

func TestLaunchStartsLauncher(t *testing.T) {
	installDir := installEldenRing(t)
	installMod(t, installDir)
	launcherPath := filepath.Join(installDir, "Game", "ersc_launcher.exe")
	require.NoError(t, os.WriteFile(launcherPath, []byte("MZ"), 0o755))

	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(stateWith(
		model.Game{ID: "er", SteamAppID: 1245620, InstallPath: installDir},
	), nil)

	svc := newTestGameService(st)
	var launched string
	svc.launchFn = func(exePath string) error {
		launched = exePath
		return nil
	}

	require.NoError(t, svc.Launch(context.Background(), "er"))
	assert.Equal(t, filepath.Clean(launcherPath), launched)
}

func TestLaunchWithoutLauncher(t *testing.T) {
	installDir := installEldenRing(t)

	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(stateWith(
		model.Game{ID: "er", SteamAppID: 1245620, InstallPath: installDir},
	), nil)

	svc := newTestGameService(st)
	assert.ErrorIs(t, svc.Launch(context.Background(), "er"), ErrNoLauncher)
}

func TestCreateShortcutWithoutLauncher(t *testing.T) {
	installDir := installEldenRing(t)

	st := new(mocks.MockGameStore)
	st.On("LoadState", mock.Anything).Return(stateWith(
		model.Game{ID: "er", SteamAppID: 1245620, InstallPath: installDir},
	), nil)

	svc := newTestGameService(st)
	_, err := svc.CreateShortcut(context.Background(), "er")
	assert.ErrorIs(t, err, ErrNoLauncher)
}
