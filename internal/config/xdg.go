// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "lyricboss"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultScriptDir returns the directory searched for bare script names.
func DefaultScriptDir() string {
	return filepath.Join(XDGConfigHome(), appName, "scripts")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// ScriptPath resolves a script reference. Paths and files present in the
// working directory are returned unchanged; other bare names are looked up
// in the script directory, with ".txt" appended when they have no extension.
func ScriptPath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if filepath.Ext(name) == "" {
		name += ".txt"
	}
	return filepath.Join(DefaultScriptDir(), name)
}
