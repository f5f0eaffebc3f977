// Package gamedef holds the static registry of supported titles and their
// Seamless Co-op mod layout: where Steam installs them, where the mod keeps
// its INI, how its save files are named, and where updates are published.
package gamedef

import "path/filepath"

// Def describes one supported game.
type Def struct {
	ID          string
	Name        string
	SteamAppID  int
	SteamFolder string

	// ConfigRelative is the mod settings INI, relative to the install dir.
	ConfigRelative string
	// ExtractRelative is where mod archives unpack to, relative to the install dir.
	ExtractRelative string
	// ModMarkerRelative is the directory whose presence means "mod installed".
	ModMarkerRelative string
	// LauncherRelative is the co-op launcher executable, relative to the install dir.
	LauncherRelative string

	// SaveAppDataFolder is the game's folder under %APPDATA%.
	SaveAppDataFolder string
	SavePrefix        string
	BaseExt           string
	CoopExt           string

	ModName  string
	NexusURL string
	// NexusDomain and NexusModID identify the mod on the Nexus Mods API.
	NexusDomain string
	NexusModID  int

	// ArchivePattern matches downloaded mod archive filenames (case-insensitive).
	ArchivePattern string

	// Defaults are the known factory values for the mod's INI keys.
	Defaults map[string]string
}

var registry = map[string]Def{
	"ac6": {
		ID:                "ac6",
		Name:              "Armored Core 6",
		SteamAppID:        1888160,
		SteamFolder:       "ARMORED CORE VI FIRES OF RUBICON",
		ConfigRelative:    filepath.Join("Game", "AC6Coop", "ac6_coop_settings.ini"),
		ExtractRelative:   "Game",
		ModMarkerRelative: filepath.Join("Game", "AC6Coop"),
		LauncherRelative:  filepath.Join("Game", "ac6_for_coop_launcher.exe"),
		SaveAppDataFolder: "ArmoredCore6",
		SavePrefix:        "AC60000",
		BaseExt:           ".sl2",
		CoopExt:           ".co2",
		ModName:           "AC6 Seamless Co-op",
		NexusURL:          "https://www.nexusmods.com/armoredcore6firesofrubicon/mods/3",
		NexusDomain:       "armoredcore6firesofrubicon",
		NexusModID:        3,
		ArchivePattern:    `armored\s*core.*co-?op.*\.zip$`,
		Defaults: map[string]string{
			"enemy_health_scaling":          "100",
			"enemy_posture_scaling":         "100",
			"enemy_damage_scaling":          "0",
			"display_party_members":         "1",
			"enable_friendly_fire":          "0",
			"auto_mission_failure_on_death": "0",
			"allow_evil_guest":              "0",
			"mod_language_override":         "",
		},
	},
	"dsr": {
		ID:                "dsr",
		Name:              "Dark Souls Remastered",
		SteamAppID:        211420,
		SteamFolder:       "DARK SOULS REMASTERED",
		ConfigRelative:    filepath.Join("Game", "SeamlessCoop", "dsr_settings.ini"),
		ExtractRelative:   "Game",
		ModMarkerRelative: filepath.Join("Game", "SeamlessCoop"),
		LauncherRelative:  filepath.Join("Game", "dsr_launcher.exe"),
		SaveAppDataFolder: "DarkSoulsRemastered",
		SavePrefix:        "DSR0000",
		BaseExt:           ".sl2",
		CoopExt:           ".co2",
		ModName:           "DSR Seamless Co-op",
		NexusURL:          "https://www.nexusmods.com/darksoulsremastered/mods/899",
		NexusDomain:       "darksoulsremastered",
		NexusModID:        899,
		ArchivePattern:    `ds1.*seamless.*co-?op.*\.zip$`,
		Defaults: map[string]string{
			"allow_invaders":          "1",
			"death_debuffs":           "1",
			"overhead_player_display": "2",
			"skip_intros":             "0",
			"enemy_health_scaling":    "35",
			"enemy_damage_scaling":    "0",
			"enemy_posture_scaling":   "15",
			"boss_health_scaling":     "100",
			"boss_damage_scaling":     "0",
			"boss_posture_scaling":    "20",
			"cooppassword":            "",
			"save_file_extension":     "co2",
			"mod_language_override":   "",
		},
	},
	"ds3": {
		ID:                "ds3",
		Name:              "Dark Souls III",
		SteamAppID:        374320,
		SteamFolder:       "DARK SOULS III",
		ConfigRelative:    filepath.Join("Game", "SeamlessCoop", "ds3sc_settings.ini"),
		ExtractRelative:   "Game",
		ModMarkerRelative: filepath.Join("Game", "SeamlessCoop"),
		LauncherRelative:  filepath.Join("Game", "ds3sc_launcher.exe"),
		SaveAppDataFolder: "DarkSoulsIII",
		SavePrefix:        "DS30000",
		BaseExt:           ".sl2",
		CoopExt:           ".co2",
		ModName:           "DS3 Seamless Co-op",
		NexusURL:          "https://www.nexusmods.com/darksouls3/mods/1895",
		NexusDomain:       "darksouls3",
		NexusModID:        1895,
		ArchivePattern:    `ds3.*seamless.*co-?op.*\.zip$`,
		Defaults: map[string]string{
			"allow_invaders":          "1",
			"death_debuffs":           "1",
			"overhead_player_display": "2",
			"skip_intros":             "1",
			"sync_progress_as_guest":  "1",
			"game_boot_volume":        "5",
			"enemy_health_scaling":    "35",
			"enemy_damage_scaling":    "0",
			"enemy_posture_scaling":   "15",
			"boss_health_scaling":     "100",
			"boss_damage_scaling":     "0",
			"boss_posture_scaling":    "20",
			"cooppassword":            "",
			"save_file_extension":     "co2",
			"mod_language_override":   "",
		},
	},
	"er": {
		ID:                "er",
		Name:              "Elden Ring",
		SteamAppID:        1245620,
		SteamFolder:       "ELDEN RING",
		ConfigRelative:    filepath.Join("Game", "SeamlessCoop", "ersc_settings.ini"),
		ExtractRelative:   "Game",
		ModMarkerRelative: filepath.Join("Game", "SeamlessCoop"),
		LauncherRelative:  filepath.Join("Game", "ersc_launcher.exe"),
		SaveAppDataFolder: "EldenRing",
		SavePrefix:        "ER0000",
		BaseExt:           ".sl2",
		CoopExt:           ".co2",
		ModName:           "Elden Ring Seamless Co-op",
		NexusURL:          "https://www.nexusmods.com/eldenring/mods/510",
		NexusDomain:       "eldenring",
		NexusModID:        510,
		ArchivePattern:    `^(seamless|er\s+seamless|eldenring\s+seamless|elden\s+ring\s+seamless)\s+co-?op.*\.zip$`,
		Defaults: map[string]string{
			"allow_invaders":          "1",
			"death_debuffs":           "1",
			"allow_summons":           "1",
			"overhead_player_display": "0",
			"skip_splash_screens":     "1",
			"enemy_health_scaling":    "35",
			"enemy_damage_scaling":    "0",
			"enemy_posture_scaling":   "15",
			"boss_health_scaling":     "100",
			"boss_damage_scaling":     "0",
			"boss_posture_scaling":    "20",
			"cooppassword":            "",
			"save_file_extension":     "co2",
			"mod_language_override":   "",
		},
	},
	"ern": {
		ID:                "ern",
		Name:              "Elden Ring Nightreign",
		SteamAppID:        2778580,
		SteamFolder:       "ELDEN RING NIGHTREIGN",
		ConfigRelative:    filepath.Join("Game", "SeamlessCoop", "ersc_settings.ini"),
		ExtractRelative:   "Game",
		ModMarkerRelative: filepath.Join("Game", "SeamlessCoop"),
		LauncherRelative:  filepath.Join("Game", "ersc_launcher.exe"),
		SaveAppDataFolder: "EldenRingNightreign",
		SavePrefix:        "ERN0000",
		BaseExt:           ".sl2",
		CoopExt:           ".co2",
		ModName:           "ER Nightreign Seamless Co-op",
		NexusURL:          "https://www.nexusmods.com/eldenringnightreign/mods/3",
		NexusDomain:       "eldenringnightreign",
		NexusModID:        3,
		ArchivePattern:    `nightreign.*seamless.*co-?op.*\.zip$`,
		Defaults: map[string]string{
			"allow_invaders":          "1",
			"death_debuffs":           "1",
			"allow_summons":           "1",
			"overhead_player_display": "0",
			"skip_splash_screens":     "1",
			"enemy_health_scaling":    "35",
			"enemy_damage_scaling":    "0",
			"enemy_posture_scaling":   "15",
			"boss_health_scaling":     "100",
			"boss_damage_scaling":     "0",
			"boss_posture_scaling":    "20",
			"cooppassword":            "",
			"save_file_extension":     "co2",
			"mod_language_override":   "",
		},
	},
}

// Get returns the definition for a game ID.
func Get(id string) (Def, bool) {
	d, ok := registry[id]
	return d, ok
}

// All returns every registered definition keyed by game ID.
func All() map[string]Def {
	out := make(map[string]Def, len(registry))
	for k, v := range registry {
		out[k] = v
	}
	return out
}
