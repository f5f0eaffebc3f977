package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"coopman/internal/archive"
	"coopman/internal/gamedef"
	"coopman/internal/ini"
	"coopman/internal/model"
	"coopman/internal/nexus"
	"coopman/internal/store"
)

var (
	ErrNoArchive      = errors.New("no mod archive found in downloads")
	ErrArchiveInvalid = errors.New("archive is not a valid zip file")
)

// ModInfoFetcher is the part of the Nexus client the mod service needs.
type ModInfoFetcher interface {
	LatestMod(ctx context.Context, domain string, modID int) (*nexus.ModInfo, error)
}

// ModStatus describes the local state of a game's co-op mod.
type ModStatus struct {
	Installed        bool                `json:"installed"`
	InstalledVersion string              `json:"installed_version,omitempty"`
	Archives         []model.ArchiveInfo `json:"archives"`
}

// InstallResult reports what an install did.
type InstallResult struct {
	Archive        string `json:"archive"`
	FilesExtracted int    `json:"files_extracted"`
	SettingsKept   int    `json:"settings_kept"`
	Version        string `json:"version,omitempty"`
}

// iniBackupDirName holds dated INI snapshots inside the mod directory so a
// bad install never loses user settings.
const iniBackupDirName = "mod_backups"

// ModService installs, removes, and checks updates for co-op mods.
type ModService interface {
	// Status reports whether the mod is installed, its version, and which
	// downloaded archives could be installed.
	Status(ctx context.Context, id string) (*ModStatus, error)

	// Install extracts a downloaded archive into the game, carrying the
	// user's existing INI settings over. Empty archiveName means newest.
	Install(ctx context.Context, id, archiveName string) (*InstallResult, error)

	// Uninstall removes the mod's files from the game directory.
	Uninstall(ctx context.Context, id string) error

	// CleanupArchives deletes the game's mod archives from the downloads
	// folder and returns how many were removed.
	CleanupArchives(ctx context.Context, id string) (int, error)

	// CheckUpdate compares the installed mod version against Nexus Mods.
	CheckUpdate(ctx context.Context, id string) (*model.UpdateInfo, error)

	// CheckAllUpdates checks every game with the mod installed.
	CheckAllUpdates(ctx context.Context) ([]model.UpdateInfo, error)
}

type modService struct {
	store        store.GameStore
	games        GameService
	nexus        ModInfoFetcher
	downloadsDir string
}

// NewModService constructs a ModService.
func NewModService(st store.GameStore, games GameService, fetcher ModInfoFetcher, downloadsDir string) ModService {
	return &modService{
		store:        st,
		games:        games,
		nexus:        fetcher,
		downloadsDir: downloadsDir,
	}
}

func (s *modService) Status(ctx context.Context, id string) (*ModStatus, error) {
	g, err := s.games.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	def, ok := gamedef.Get(id)
	if !ok {
		return nil, ErrGameNotFound
	}

	status := &ModStatus{
		Installed: g.ModInstalled,
		Archives:  s.findArchives(def),
	}
	if g.ModInstalled {
		status.InstalledVersion = s.installedVersion(g, def)
	}
	return status, nil
}

func (s *modService) Install(ctx context.Context, id, archiveName string) (*InstallResult, error) {
	g, err := s.games.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	def, ok := gamedef.Get(id)
	if !ok {
		return nil, ErrGameNotFound
	}

	archivePath, err := s.resolveArchive(def, archiveName)
	if err != nil {
		return nil, err
	}
	if !archive.IsZip(archivePath) {
		return nil, ErrArchiveInvalid
	}

	// Snapshot every INI under the mod dir before touching anything, plus a
	// dated on-disk copy for the user.
	markerDir := filepath.Join(g.InstallPath, def.ModMarkerRelative)
	oldINIs := snapshotINIs(markerDir)
	if len(oldINIs) > 0 {
		if err := writeINIBackups(markerDir, oldINIs); err != nil {
			return nil, fmt.Errorf("backup settings: %w", err)
		}
	}

	// A fresh extract on top of stale mod files is how installs break.
	// INIs and their backups survive the sweep.
	if err := removeModFiles(markerDir); err != nil {
		return nil, fmt.Errorf("remove previous mod files: %w", err)
	}

	extractDir := filepath.Join(g.InstallPath, def.ExtractRelative)
	extracted, err := archive.ExtractZip(archivePath, extractDir)
	if err != nil {
		return nil, fmt.Errorf("extract archive: %w", err)
	}

	// Merge old values into the INIs the new archive shipped; put back any
	// INI the archive dropped.
	kept := 0
	for name, data := range oldINIs {
		path := filepath.Join(markerDir, name)
		if fileExists(path) {
			n, err := ini.Merge(path, data)
			if err != nil {
				return nil, fmt.Errorf("restore settings: %w", err)
			}
			kept += n
		} else if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("restore settings: %w", err)
		}
	}

	version := nexus.VersionFromArchiveName(filepath.Base(archivePath))
	if err := s.recordInstall(ctx, g, def, version); err != nil {
		return nil, err
	}

	return &InstallResult{
		Archive:        filepath.Base(archivePath),
		FilesExtracted: extracted,
		SettingsKept:   kept,
		Version:        version,
	}, nil
}

func (s *modService) Uninstall(ctx context.Context, id string) error {
	g, err := s.games.Get(ctx, id)
	if err != nil {
		return err
	}
	def, ok := gamedef.Get(id)
	if !ok {
		return ErrGameNotFound
	}
	if !g.ModInstalled {
		return ErrModNotInstalled
	}

	markerDir := filepath.Join(g.InstallPath, def.ModMarkerRelative)
	if err := os.RemoveAll(markerDir); err != nil {
		return fmt.Errorf("remove mod files: %w", err)
	}
	launcherPath := filepath.Join(g.InstallPath, def.LauncherRelative)
	if err := os.Remove(launcherPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove launcher: %w", err)
	}

	return s.updateGame(ctx, g.ID, func(g *model.Game) {
		g.ModInstalled = false
		g.ConfigPath = ""
		g.LauncherFound = false
		g.LauncherPath = ""
		g.ModVersion = ""
	})
}

func (s *modService) CleanupArchives(ctx context.Context, id string) (int, error) {
	if _, err := s.games.Get(ctx, id); err != nil {
		return 0, err
	}
	def, ok := gamedef.Get(id)
	if !ok {
		return 0, ErrGameNotFound
	}

	removed := 0
	for _, a := range s.findArchives(def) {
		if err := os.Remove(filepath.Join(s.downloadsDir, a.Name)); err != nil {
			return removed, fmt.Errorf("delete archive: %w", err)
		}
		removed++
	}
	return removed, nil
}

func (s *modService) CheckUpdate(ctx context.Context, id string) (*model.UpdateInfo, error) {
	g, err := s.games.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	def, ok := gamedef.Get(id)
	if !ok {
		return nil, ErrGameNotFound
	}
	if !g.ModInstalled {
		return nil, ErrModNotInstalled
	}
	info := s.checkOne(ctx, g, def)
	return &info, nil
}

func (s *modService) CheckAllUpdates(ctx context.Context) ([]model.UpdateInfo, error) {
	state, err := s.store.LoadState(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	for id, g := range state.Games {
		if g.ModInstalled {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	results := make([]model.UpdateInfo, 0, len(ids))
	for _, id := range ids {
		def, ok := gamedef.Get(id)
		if !ok {
			continue
		}
		results = append(results, s.checkOne(ctx, state.Games[id], def))
	}
	return results, nil
}

// checkOne never fails: API problems are reported in the Error field so one
// bad game does not sink a bulk check.
func (s *modService) checkOne(ctx context.Context, g model.Game, def gamedef.Def) model.UpdateInfo {
	info := model.UpdateInfo{
		GameID:           g.ID,
		GameName:         g.Name,
		NexusURL:         g.NexusURL,
		InstalledVersion: s.installedVersion(g, def),
	}

	latest, err := s.nexus.LatestMod(ctx, def.NexusDomain, def.NexusModID)
	if err != nil {
		info.Error = updateErrorMessage(err)
		return info
	}

	info.LatestVersion = latest.Version
	info.ReleaseDate = latest.UpdatedTime
	info.FileName = latest.FileName
	info.SizeMB = latest.SizeMB
	info.HasUpdate = nexus.HasUpdate(info.InstalledVersion, latest.Version)
	return info
}

func updateErrorMessage(err error) string {
	switch {
	case errors.Is(err, nexus.ErrNoAPIKey):
		return "Nexus API key not configured. Set NEXUS_API_KEY to enable update checks."
	case errors.Is(err, nexus.ErrUnauthorized):
		return "Nexus rejected the API key."
	case errors.Is(err, nexus.ErrRateLimited):
		return "Nexus API rate limit reached. Try again later."
	case errors.Is(err, nexus.ErrModNotFound):
		return "Mod page not found on Nexus."
	default:
		return "Update check failed: " + err.Error()
	}
}

// snapshotINIs reads every .ini directly under the mod dir into memory,
// keyed by filename. A missing mod dir yields an empty map.
func snapshotINIs(markerDir string) map[string][]byte {
	out := make(map[string][]byte)
	entries, err := os.ReadDir(markerDir)
	if err != nil {
		return out
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".ini") {
			continue
		}
		if data, err := os.ReadFile(filepath.Join(markerDir, e.Name())); err == nil {
			out[e.Name()] = data
		}
	}
	return out
}

// writeINIBackups puts dated copies of the snapshots under
// <markerDir>/mod_backups/<timestamp>/.
func writeINIBackups(markerDir string, inis map[string][]byte) error {
	dir := filepath.Join(markerDir, iniBackupDirName, time.Now().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, data := range inis {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// removeModFiles clears the mod dir except INIs and their backups.
func removeModFiles(markerDir string) error {
	entries, err := os.ReadDir(markerDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.Name() == iniBackupDirName || strings.EqualFold(filepath.Ext(e.Name()), ".ini") {
			continue
		}
		if err := os.RemoveAll(filepath.Join(markerDir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// installedVersion prefers the version recorded at install time and falls
// back to detecting it from the mod files.
func (s *modService) installedVersion(g model.Game, def gamedef.Def) string {
	if g.ModVersion != "" {
		return g.ModVersion
	}
	return nexus.InstalledVersion(filepath.Join(g.InstallPath, def.ModMarkerRelative))
}

// findArchives lists downloaded archives matching the mod's filename
// pattern, newest first.
func (s *modService) findArchives(def gamedef.Def) []model.ArchiveInfo {
	re, err := regexp.Compile("(?i)" + def.ArchivePattern)
	if err != nil {
		return nil
	}

	entries, err := os.ReadDir(s.downloadsDir)
	if err != nil {
		return nil
	}

	var found []model.ArchiveInfo
	for _, e := range entries {
		if e.IsDir() || !re.MatchString(strings.ToLower(e.Name())) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, model.ArchiveInfo{
			Name:     e.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Modified.After(found[j].Modified) })
	return found
}

// resolveArchive returns the full path of the archive to install: the named
// one when given, otherwise the newest match in the downloads directory.
func (s *modService) resolveArchive(def gamedef.Def, archiveName string) (string, error) {
	if archiveName != "" {
		// Only a bare filename from the downloads dir is accepted.
		if filepath.Base(archiveName) != archiveName {
			return "", ErrNoArchive
		}
		path := filepath.Join(s.downloadsDir, archiveName)
		if !fileExists(path) {
			return "", ErrNoArchive
		}
		return path, nil
	}

	found := s.findArchives(def)
	if len(found) == 0 {
		return "", ErrNoArchive
	}
	return filepath.Join(s.downloadsDir, found[0].Name), nil
}

func (s *modService) recordInstall(ctx context.Context, g model.Game, def gamedef.Def, version string) error {
	return s.updateGame(ctx, g.ID, func(g *model.Game) {
		configPath := filepath.Join(g.InstallPath, def.ConfigRelative)
		if fileExists(configPath) {
			g.ModInstalled = true
			g.ConfigPath = filepath.Clean(configPath)
		}
		launcherPath := filepath.Join(g.InstallPath, def.LauncherRelative)
		if fileExists(launcherPath) {
			g.LauncherFound = true
			g.LauncherPath = filepath.Clean(launcherPath)
		}
		g.ModVersion = version
	})
}

// updateGame applies a mutation to one stored game and persists the state.
func (s *modService) updateGame(ctx context.Context, id string, fn func(*model.Game)) error {
	state, err := s.store.LoadState(ctx)
	if err != nil {
		return err
	}
	g, ok := state.Games[id]
	if !ok {
		return ErrGameNotFound
	}
	fn(&g)
	state.Games[id] = g
	return s.store.SaveState(ctx, state)
}
