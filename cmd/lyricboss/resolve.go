package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/lyricboss/internal/config"
	"github.com/verte-zerg/lyricboss/internal/model"
)

// resolveConfig merges built-in defaults, the config file, LYRICBOSS_*
// environment variables and CLI flags, in increasing order of precedence.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	applyStringConfig(cmd, "script", &gameScript, fileCfg.Game.Script, envCfg.Script)
	applyStringConfig(cmd, "title", &gameTitle, fileCfg.Game.Title, envCfg.Title)
	applySliceConfig(cmd, "ignore", &gameIgnore, fileCfg.Game.Ignore)
	applySliceConfig(cmd, "ignore-range", &gameIgnoreRanges, fileCfg.Game.IgnoreRanges)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level, envCfg.LogLevel)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File, envCfg.LogFile)

	cfg := model.Config{
		ScriptPath:   config.ScriptPath(gameScript),
		Title:        gameTitle,
		Ignore:       append([]string(nil), gameIgnore...),
		IgnoreRanges: append([]string(nil), gameIgnoreRanges...),
		LogLevel:     logLevel,
		LogFile:      logFile,
	}
	applyMessages(&cfg, fileCfg.Messages)

	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, fileValue *string, envValue string) {
	if cmd.Flags().Changed(name) {
		return
	}
	if envValue != "" {
		*target = envValue
		return
	}
	if fileValue != nil {
		*target = *fileValue
	}
}

func applySliceConfig(cmd *cobra.Command, name string, target, fileValue *[]string) {
	if fileValue == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = append([]string(nil), (*fileValue)...)
}

func applyMessages(cfg *model.Config, m config.MessagesConfig) {
	set := func(target *string, value *string) {
		if value != nil {
			*target = *value
		}
	}
	set(&cfg.Messages.Intro, m.Intro)
	set(&cfg.Messages.Correct, m.Correct)
	set(&cfg.Messages.Wrong, m.Wrong)
	set(&cfg.Messages.Victory, m.Victory)
	set(&cfg.Messages.Restarted, m.Restarted)
}
