package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultDatabasePath returns the sqlite file path using XDG base
// directories. Planning runs are state data, so XDG_STATE_HOME.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.StateHome, "tripsmith", "plans.db")
}

// DefaultExportDir returns where markdown itineraries are written.
func DefaultExportDir() string {
	return filepath.Join(xdg.DataHome, "tripsmith", "itineraries")
}

// DefaultUserConfigPath returns the user configuration file path.
func DefaultUserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "tripsmith", "config.json")
}
