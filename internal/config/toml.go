// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game     GameConfig     `toml:"game"`
	Messages MessagesConfig `toml:"messages"`
	Log      LogConfig      `toml:"log"`
}

// GameConfig maps game-related settings.
type GameConfig struct {
	Script       *string   `toml:"script"`
	Title        *string   `toml:"title"`
	Ignore       *[]string `toml:"ignore"`
	IgnoreRanges *[]string `toml:"ignore-ranges"`
}

// MessagesConfig maps status line overrides.
type MessagesConfig struct {
	Intro     *string `toml:"intro"`
	Correct   *string `toml:"correct"`
	Wrong     *string `toml:"wrong"`
	Victory   *string `toml:"victory"`
	Restarted *string `toml:"restarted"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
