package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg.Game.Script != nil || cfg.Messages.Wrong != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[game]
script = "anthem"
title = "Boss Rush"
ignore = []
ignore-ranges = ["U+3040-U+309F"]

[messages]
wrong = "틀렸습니다."

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Script == nil || *cfg.Game.Script != "anthem" {
		t.Fatalf("unexpected script: %v", cfg.Game.Script)
	}
	if cfg.Game.Title == nil || *cfg.Game.Title != "Boss Rush" {
		t.Fatalf("unexpected title: %v", cfg.Game.Title)
	}
	if cfg.Game.Ignore == nil || len(*cfg.Game.Ignore) != 0 {
		t.Fatalf("expected explicit empty ignore list, got %v", cfg.Game.Ignore)
	}
	if cfg.Game.IgnoreRanges == nil || len(*cfg.Game.IgnoreRanges) != 1 {
		t.Fatalf("unexpected ignore ranges: %v", cfg.Game.IgnoreRanges)
	}
	if cfg.Messages.Wrong == nil || *cfg.Messages.Wrong != "틀렸습니다." {
		t.Fatalf("unexpected wrong message: %v", cfg.Messages.Wrong)
	}
	if cfg.Messages.Victory != nil {
		t.Fatalf("expected unset victory message")
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\ndifficulty = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadConfigRejectsBadSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LYRICBOSS_SCRIPT", "/tmp/lyrics.txt")
	t.Setenv("LYRICBOSS_LOG_LEVEL", "info")
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.Script != "/tmp/lyrics.txt" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected env config: %+v", cfg)
	}
	if cfg.Title != "" || cfg.LogFile != "" {
		t.Fatalf("expected unset values to be empty: %+v", cfg)
	}
}

func TestScriptPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if got := ScriptPath(""); got != "" {
		t.Fatalf("expected empty path, got %q", got)
	}
	if got := ScriptPath("anthem"); got != filepath.Join(home, "lyricboss", "scripts", "anthem.txt") {
		t.Fatalf("unexpected bare name resolution: %q", got)
	}
	if got := ScriptPath("anthem.lrc"); got != filepath.Join(home, "lyricboss", "scripts", "anthem.lrc") {
		t.Fatalf("unexpected extension handling: %q", got)
	}
	if got := ScriptPath("./lyrics.txt"); got != "./lyrics.txt" {
		t.Fatalf("expected relative path unchanged, got %q", got)
	}
	if err := os.WriteFile("local.txt", []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write local script: %v", err)
	}
	if got := ScriptPath("local.txt"); got != "local.txt" {
		t.Fatalf("expected local file to win, got %q", got)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if got := DefaultConfigPath(); got != filepath.Join(home, "lyricboss", "config.toml") {
		t.Fatalf("unexpected config path: %q", got)
	}
}
