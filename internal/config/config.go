// Package config provides configuration types and defaults for vimcore.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/vimcore/internal/log"
)

// Config holds all configuration options for vimcore.
type Config struct {
	Editor EditorConfig `mapstructure:"editor"`
	Log    LogConfig    `mapstructure:"log"`
	Replay ReplayConfig `mapstructure:"replay"`
}

// EditorConfig controls the playground editor and the reference buffer.
type EditorConfig struct {
	VimMode     bool   `mapstructure:"vim_mode" yaml:"vim_mode"`         // false gives a plain insert-only editor
	InitialText string `mapstructure:"initial_text" yaml:"initial_text"` // seed text for the playground
	UndoLimit   int    `mapstructure:"undo_limit" yaml:"undo_limit"`     // 0 disables undo
}

// LogConfig holds debug logging options.
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	File  string `mapstructure:"file"`
}

// ReplayConfig holds defaults for the replay command.
type ReplayConfig struct {
	ShowDiff      bool          `mapstructure:"show_diff"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			VimMode:     true,
			InitialText: "hello world\nfoo bar baz\nthe quick brown fox",
			UndoLimit:   1000,
		},
		Log: LogConfig{
			File: "vimcore.log",
		},
		Replay: ReplayConfig{
			ShowDiff:      true,
			WatchDebounce: 200 * time.Millisecond,
		},
	}
}

// Validate checks a loaded config for values the program cannot use.
func Validate(cfg Config) error {
	var errs []error
	if cfg.Editor.UndoLimit < 0 {
		errs = append(errs, fmt.Errorf("editor.undo_limit must be >= 0, got %d", cfg.Editor.UndoLimit))
	}
	if cfg.Replay.WatchDebounce < 0 {
		errs = append(errs, fmt.Errorf("replay.watch_debounce must be >= 0, got %s", cfg.Replay.WatchDebounce))
	}
	if cfg.Log.Debug && cfg.Log.File == "" {
		errs = append(errs, errors.New("log.file is required when log.debug is true"))
	}
	return errors.Join(errs...)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# vimcore configuration

# Editor settings (playground and reference buffer)
editor:
  vim_mode: true        # false turns the playground into a plain editor
  initial_text: |-
    hello world
    foo bar baz
    the quick brown fox
  undo_limit: 1000      # undo steps kept by the buffer, 0 disables undo

# Debug logging (also enabled with --debug)
log:
  debug: false
  file: vimcore.log

# Replay command defaults
replay:
  show_diff: true       # print a before/after diff of the buffer
  watch_debounce: 200ms # quiet period before --watch re-runs the script
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
