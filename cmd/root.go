package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vimcore/internal/config"
	"github.com/zjrosen/vimcore/internal/log"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 reply cannot race with the program's input loop.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".vimcore/config.yaml"

var (
	version    = "dev"
	cfgFile    string
	debugFlag  bool
	cfg        config.Config
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "vimcore",
	Short: "A vim-mode editing engine with an interactive playground",
	Long: `vimcore is an embeddable vim-mode engine: it turns key presses into
editing actions for a host text buffer. Running vimcore without a subcommand
opens the playground.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runPlayground,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .vimcore/config.yaml or ~/.config/vimcore/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs to log.file")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("editor.vim_mode", defaults.Editor.VimMode)
	viper.SetDefault("editor.initial_text", defaults.Editor.InitialText)
	viper.SetDefault("editor.undo_limit", defaults.Editor.UndoLimit)
	viper.SetDefault("log.debug", defaults.Log.Debug)
	viper.SetDefault("log.file", defaults.Log.File)
	viper.SetDefault("replay.show_diff", defaults.Replay.ShowDiff)
	viper.SetDefault("replay.watch_debounce", defaults.Replay.WatchDebounce)

	_ = viper.BindPFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.SetEnvPrefix("VIMCORE")
	_ = viper.BindEnv("log.debug", "VIMCORE_DEBUG")
	_ = viper.BindEnv("log.file", "VIMCORE_LOG")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .vimcore/config.yaml (current directory)
		// 2. ~/.config/vimcore/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "vimcore"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// First run: write the commented default config.
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setup validates the loaded config and starts debug logging when asked.
func setup(_ *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !cfg.Log.Debug {
		return nil
	}

	cleanup, err := log.InitWithTeaLog(cfg.Log.File, "vimcore")
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	logCleanup = cleanup
	log.Info(log.CatConfig, "vimcore starting", "version", version, "config", viper.ConfigFileUsed())
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
