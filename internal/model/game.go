package model

import "time"

// Game is a discovered installation of a supported title, together with
// everything the manager knows about its co-op mod. It is a pure domain
// model with no persistence-specific dependencies or tags beyond JSON,
// so it can travel across the service, store, and HTTP layers unchanged.
type Game struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SteamAppID    int    `json:"steam_app_id"`
	InstallPath   string `json:"install_path"`
	ConfigPath    string `json:"config_path,omitempty"`
	SaveDir       string `json:"save_dir,omitempty"`
	SavePrefix    string `json:"save_prefix"`
	BaseExt       string `json:"base_ext"`
	CoopExt       string `json:"coop_ext"`
	ModName       string `json:"mod_name"`
	NexusURL      string `json:"nexus_url"`
	ModInstalled  bool   `json:"mod_installed"`
	LauncherPath  string `json:"launcher_path,omitempty"`
	LauncherFound bool   `json:"launcher_exists"`
	// ModVersion is the version recorded at install time, if any.
	// Empty means the version must be detected from disk.
	ModVersion string `json:"installed_mod_version,omitempty"`
}

// State is the persisted view of the world: every game the last scan (or a
// later install) knew about, keyed by game ID.
type State struct {
	Games    map[string]Game `json:"games"`
	LastScan *time.Time      `json:"last_scan,omitempty"`
}

// NewState returns an empty but non-nil state.
func NewState() *State {
	return &State{Games: make(map[string]Game)}
}
