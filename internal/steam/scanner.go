// Package steam locates Steam libraries and installed games without any
// Steam SDK: it probes well-known directories, reads libraryfolders.vdf,
// and checks appmanifest files. Everything is best-effort — an unreadable
// drive or malformed file never fails a scan.
package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"coopman/internal/gamedef"
	"coopman/internal/model"
)

var steamIDDirRe = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// Scanner discovers Steam libraries and supported games.
// The zero value scans real drives; tests override Roots and AppDataDir.
type Scanner struct {
	// Roots are candidate drive roots. Empty means enumerate mounted drives.
	Roots []string
	// AppDataDir overrides %APPDATA% for save-dir detection.
	AppDataDir string
}

// probeDirs are the well-known Steam install locations tried on every drive.
var probeDirs = []string{
	"Steam",
	"SteamLibrary",
	filepath.Join("Program Files", "Steam"),
	filepath.Join("Program Files (x86)", "Steam"),
}

// Libraries returns a de-duplicated list of Steam library root directories,
// combining per-drive probing with libraryfolders.vdf expansion.
func (s *Scanner) Libraries() []string {
	roots := s.Roots
	if len(roots) == 0 {
		roots = driveRoots()
	}

	seen := make(map[string]struct{})
	var libs []string
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if _, dup := seen[dir]; dup {
			return
		}
		seen[dir] = struct{}{}
		libs = append(libs, dir)
	}

	for _, root := range roots {
		for _, probe := range probeDirs {
			candidate := filepath.Join(root, probe)
			info, err := os.Stat(candidate)
			if err != nil || !info.IsDir() {
				continue
			}
			add(candidate)
			// A Steam install lists its extra libraries in libraryfolders.vdf.
			vdf := filepath.Join(candidate, "steamapps", "libraryfolders.vdf")
			for _, p := range parseLibraryFoldersFile(vdf) {
				if info, err := os.Stat(p); err == nil && info.IsDir() {
					add(p)
				}
			}
		}
	}
	return libs
}

// Scan walks every library looking for supported games and returns what it
// found keyed by game ID. A game found in one library is not looked for in
// later ones.
func (s *Scanner) Scan() map[string]model.Game {
	found := make(map[string]model.Game)
	for _, lib := range s.Libraries() {
		steamapps := filepath.Join(lib, "steamapps")
		common := filepath.Join(steamapps, "common")
		if info, err := os.Stat(common); err != nil || !info.IsDir() {
			continue
		}

		for id, def := range gamedef.All() {
			if _, ok := found[id]; ok {
				continue
			}
			installDir := filepath.Join(common, def.SteamFolder)
			if info, err := os.Stat(installDir); err != nil || !info.IsDir() {
				continue
			}
			// The folder can linger after uninstall; the appmanifest is the
			// source of truth for "actually installed".
			if !manifestExists(steamapps, def.SteamAppID) {
				continue
			}
			found[id] = s.describe(def, installDir)
		}
	}
	return found
}

// describe assembles the Game record for a verified install directory.
func (s *Scanner) describe(def gamedef.Def, installDir string) model.Game {
	configPath := filepath.Join(installDir, def.ConfigRelative)
	modInstalled := fileExists(configPath)
	launcherPath := filepath.Join(installDir, def.LauncherRelative)
	launcherFound := fileExists(launcherPath)

	g := model.Game{
		ID:            def.ID,
		Name:          def.Name,
		SteamAppID:    def.SteamAppID,
		InstallPath:   filepath.Clean(installDir),
		SavePrefix:    def.SavePrefix,
		BaseExt:       def.BaseExt,
		CoopExt:       def.CoopExt,
		ModName:       def.ModName,
		NexusURL:      def.NexusURL,
		ModInstalled:  modInstalled,
		LauncherFound: launcherFound,
		SaveDir:       s.DetectSaveDir(def.SaveAppDataFolder),
	}
	if modInstalled {
		g.ConfigPath = filepath.Clean(configPath)
	}
	if launcherFound {
		g.LauncherPath = filepath.Clean(launcherPath)
	}
	return g
}

// DetectSaveDir finds the save directory under <appdata>/<folder>/<SteamID>/.
// The Steam ID subfolder is numeric or hex; the first match wins.
func (s *Scanner) DetectSaveDir(appDataFolder string) string {
	appData := s.AppDataDir
	if appData == "" {
		appData = os.Getenv("APPDATA")
	}
	if appData == "" {
		return ""
	}
	base := filepath.Join(appData, appDataFolder)
	entries, err := os.ReadDir(base)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.IsDir() && steamIDDirRe.MatchString(e.Name()) {
			return filepath.Join(base, e.Name())
		}
	}
	return ""
}

// InstallValid reports whether a previously recorded install still exists:
// the directory is present and Steam still has its appmanifest two levels up.
func InstallValid(installPath string, appID int) bool {
	if installPath == "" {
		return false
	}
	if info, err := os.Stat(installPath); err != nil || !info.IsDir() {
		return false
	}
	steamapps := filepath.Dir(filepath.Dir(installPath))
	return manifestExists(steamapps, appID)
}

func manifestExists(steamappsDir string, appID int) bool {
	if appID == 0 {
		return true
	}
	return fileExists(filepath.Join(steamappsDir, fmt.Sprintf("appmanifest_%d.acf", appID)))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
