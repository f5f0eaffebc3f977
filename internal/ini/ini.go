// Package ini reads and writes the mods' settings files. The mods document
// every key with comment lines directly above it, so parsing keeps the
// comment/setting association and infers from the comment text which UI
// control a setting needs (select, number, or free text).
package ini

// Option is one selectable value of a select-style setting.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Setting is a single key/value pair with inferred edit metadata.
type Setting struct {
	Key         string   `json:"key"`
	Value       string   `json:"value"`
	Description string   `json:"description"`
	Type        string   `json:"type"` // "select", "number", or "text"
	Default     string   `json:"default,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Min         *int     `json:"min,omitempty"`
	Max         *int     `json:"max,omitempty"`
}

// Section groups the settings under one [header].
type Section struct {
	Name     string    `json:"name"`
	Settings []Setting `json:"settings"`
}
