// Package service implements the application use cases on top of the
// steam scanner, the INI layer, the save manager, and the Nexus client.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"coopman/internal/gamedef"
	"coopman/internal/ini"
	"coopman/internal/launcher"
	"coopman/internal/model"
	"coopman/internal/steam"
	"coopman/internal/store"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrModNotInstalled = errors.New("mod is not installed for this game")
	ErrNoLauncher      = errors.New("co-op launcher not found")
)

// GameService defines the use cases around discovered games.
type GameService interface {
	// List returns known games, dropping any whose install disappeared.
	List(ctx context.Context) ([]model.Game, *time.Time, error)

	// Scan re-discovers games on disk and replaces the stored state.
	Scan(ctx context.Context) ([]model.Game, error)

	// Get returns one known game by ID.
	Get(ctx context.Context, id string) (model.Game, error)

	// Settings parses the game's mod INI into typed sections.
	Settings(ctx context.Context, id string) ([]ini.Section, error)

	// SaveSettings writes changed values back, preserving file layout.
	SaveSettings(ctx context.Context, id string, values map[string]string) error

	// Launch starts the co-op launcher detached.
	Launch(ctx context.Context, id string) error

	// CreateShortcut puts a desktop shortcut to the launcher, with cover
	// art as its icon when available.
	CreateShortcut(ctx context.Context, id string) (string, error)

	// PlayerCount returns the current Steam player count for the game.
	PlayerCount(ctx context.Context, id string) (int, error)

	// CoverArt returns a local path to the game's cached cover art,
	// downloading it on first use.
	CoverArt(ctx context.Context, id string) (string, error)
}

type gameService struct {
	store    store.GameStore
	scanner  *steam.Scanner
	webAPI   *steam.WebAPI
	iconsDir string

	// Swappable for tests.
	launchFn   func(exePath string) error
	shortcutFn func(exePath, name, iconPath string) (string, error)
}

// NewGameService constructs a GameService.
func NewGameService(st store.GameStore, scanner *steam.Scanner, webAPI *steam.WebAPI, iconsDir string) GameService {
	return &gameService{
		store:      st,
		scanner:    scanner,
		webAPI:     webAPI,
		iconsDir:   iconsDir,
		launchFn:   launcher.Launch,
		shortcutFn: launcher.CreateShortcut,
	}
}

func (s *gameService) List(ctx context.Context) ([]model.Game, *time.Time, error) {
	state, err := s.store.LoadState(ctx)
	if err != nil {
		return nil, nil, err
	}

	changed := false
	for id, g := range state.Games {
		if !steam.InstallValid(g.InstallPath, g.SteamAppID) {
			delete(state.Games, id)
			changed = true
			continue
		}
		refreshed := s.refresh(g)
		if refreshed != g {
			state.Games[id] = refreshed
			changed = true
		}
	}
	if changed {
		if err := s.store.SaveState(ctx, state); err != nil {
			return nil, nil, err
		}
	}

	return sortedGames(state.Games), state.LastScan, nil
}

func (s *gameService) Scan(ctx context.Context) ([]model.Game, error) {
	state, err := s.store.LoadState(ctx)
	if err != nil {
		return nil, err
	}

	found := s.scanner.Scan()
	// Carry forward what a scan cannot see, like the recorded mod version.
	for id, g := range found {
		if prev, ok := state.Games[id]; ok && g.ModInstalled {
			g.ModVersion = prev.ModVersion
			found[id] = g
		}
	}

	now := time.Now().UTC()
	state.Games = found
	state.LastScan = &now
	if err := s.store.SaveState(ctx, state); err != nil {
		return nil, err
	}
	return sortedGames(found), nil
}

func (s *gameService) Get(ctx context.Context, id string) (model.Game, error) {
	state, err := s.store.LoadState(ctx)
	if err != nil {
		return model.Game{}, err
	}
	g, ok := state.Games[id]
	if !ok {
		return model.Game{}, ErrGameNotFound
	}
	return s.refresh(g), nil
}

func (s *gameService) Settings(ctx context.Context, id string) ([]ini.Section, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !g.ModInstalled || g.ConfigPath == "" {
		return nil, ErrModNotInstalled
	}

	def, _ := gamedef.Get(id)
	sections, err := ini.ParseFile(g.ConfigPath, def.Defaults)
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return sections, nil
}

func (s *gameService) SaveSettings(ctx context.Context, id string, values map[string]string) error {
	g, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !g.ModInstalled || g.ConfigPath == "" {
		return ErrModNotInstalled
	}
	if err := ini.WriteSettings(g.ConfigPath, values); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s *gameService) Launch(ctx context.Context, id string) error {
	g, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !g.LauncherFound || g.LauncherPath == "" {
		return ErrNoLauncher
	}
	return s.launchFn(g.LauncherPath)
}

func (s *gameService) CreateShortcut(ctx context.Context, id string) (string, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !g.LauncherFound || g.LauncherPath == "" {
		return "", ErrNoLauncher
	}

	// The launcher exe's own icon is used; .lnk icons cannot be JPEGs, so
	// the cached cover art only serves the UI.
	return s.shortcutFn(g.LauncherPath, g.ModName, "")
}

func (s *gameService) PlayerCount(ctx context.Context, id string) (int, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.webAPI.PlayerCount(ctx, g.SteamAppID)
}

func (s *gameService) CoverArt(ctx context.Context, id string) (string, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(s.iconsDir, fmt.Sprintf("%s_cover.jpg", g.ID))
	if info, err := os.Stat(dest); err == nil && info.Size() > 0 {
		return dest, nil
	}
	if err := s.webAPI.DownloadCoverArt(ctx, g.SteamAppID, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// refresh re-checks the parts of a Game that can change outside a full scan:
// mod presence, launcher presence, and the save directory.
func (s *gameService) refresh(g model.Game) model.Game {
	def, ok := gamedef.Get(g.ID)
	if !ok {
		return g
	}

	configPath := filepath.Join(g.InstallPath, def.ConfigRelative)
	if fileExists(configPath) {
		g.ModInstalled = true
		g.ConfigPath = filepath.Clean(configPath)
	} else {
		g.ModInstalled = false
		g.ConfigPath = ""
		g.ModVersion = ""
	}

	launcherPath := filepath.Join(g.InstallPath, def.LauncherRelative)
	if fileExists(launcherPath) {
		g.LauncherFound = true
		g.LauncherPath = filepath.Clean(launcherPath)
	} else {
		g.LauncherFound = false
		g.LauncherPath = ""
	}

	if g.SaveDir == "" {
		g.SaveDir = s.scanner.DetectSaveDir(def.SaveAppDataFolder)
	}
	return g
}

func sortedGames(games map[string]model.Game) []model.Game {
	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
