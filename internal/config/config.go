package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// NexusConfig holds settings for the Nexus Mods API client.
type NexusConfig struct {
	APIBase string
	APIKey  string
	// TimeoutSec bounds a single API call.
	TimeoutSec int
}

// SteamConfig holds settings for the Steam web API and CDN.
type SteamConfig struct {
	APIBase    string
	CDNBase    string
	TimeoutSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; sensitive values (the Nexus
// API key) are never hardcoded.
type AppConfig struct {
	Host string
	Port string

	// StatePath is the embedded database file holding scan results.
	StatePath string
	// DownloadsDir is where mod archives are looked for.
	DownloadsDir string
	// IconsDir caches downloaded cover art for shortcuts.
	IconsDir string
	// OpenBrowser controls opening the UI after startup.
	OpenBrowser bool

	Nexus NexusConfig
	Steam SteamConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Host:         getEnv("HOST", "127.0.0.1"),
		Port:         getEnv("PORT", "5000"),
		StatePath:    getEnv("STATE_PATH", filepath.Join(defaultDataDir(), "coopman.ldb")),
		DownloadsDir: getEnv("DOWNLOADS_DIR", defaultDownloadsDir()),
		IconsDir:     getEnv("ICONS_DIR", filepath.Join(defaultDataDir(), "icons")),
		OpenBrowser:  getEnvBool("OPEN_BROWSER", true),
		Nexus: NexusConfig{
			APIBase:    getEnv("NEXUS_API_BASE", "https://api.nexusmods.com/v1"),
			APIKey:     getEnv("NEXUS_API_KEY", ""),
			TimeoutSec: getEnvInt("NEXUS_TIMEOUT_SEC", 10),
		},
		Steam: SteamConfig{
			APIBase:    getEnv("STEAM_API_BASE", "https://api.steampowered.com"),
			CDNBase:    getEnv("STEAM_CDN_BASE", "https://cdn.cloudflare.steamstatic.com/steam/apps"),
			TimeoutSec: getEnvInt("STEAM_TIMEOUT_SEC", 10),
		},
	}
}

// defaultDataDir resolves the per-user application data directory.
// APPDATA is preferred on Windows; elsewhere a dot-directory in $HOME.
func defaultDataDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "coopman")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".coopman")
}

func defaultDownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
