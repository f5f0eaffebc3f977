package model

// Package model contains domain models/data structures shared across layers.
// Keep it free of business logic.

import "time"

// SaveFileInfo describes one save file on disk.
type SaveFileInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// BackupSet groups backup files created in the same operation, identified by
// their shared timestamp suffix (2006-01-02_15-04-05).
type BackupSet struct {
	Timestamp string `json:"timestamp"`
	BaseCount int    `json:"base_count"`
	CoopCount int    `json:"coop_count"`
}

// ArchiveInfo describes a downloaded mod archive candidate.
type ArchiveInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// UpdateInfo is the result of checking one game's mod against Nexus Mods.
type UpdateInfo struct {
	GameID           string  `json:"game_id"`
	GameName         string  `json:"game_name"`
	NexusURL         string  `json:"nexus_url"`
	InstalledVersion string  `json:"installed_version,omitempty"`
	LatestVersion    string  `json:"latest_version,omitempty"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	FileName         string  `json:"file_name,omitempty"`
	SizeMB           float64 `json:"size_mb,omitempty"`
	HasUpdate        bool    `json:"has_update"`
	Error            string  `json:"error,omitempty"`
}
