package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vimcore/internal/config"
	"github.com/zjrosen/vimcore/internal/log"
	"github.com/zjrosen/vimcore/internal/mode/playground"
)

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Interactive playground for the vim engine",
	Long: `Launch an interactive editor driven by the vim engine. Press f1 for the
key reference, ctrl+t to switch between vim and plain editing, and ctrl+q to
quit.`,
	RunE: runPlayground,
}

var (
	playgroundText string
	saveVimMode    bool
)

func init() {
	rootCmd.AddCommand(playgroundCmd)

	playgroundCmd.Flags().StringVar(&playgroundText, "text", "", "initial buffer text (overrides editor.initial_text)")
	playgroundCmd.Flags().BoolVar(&saveVimMode, "save", false, "save the final vim mode setting to the config file")
}

func runPlayground(cmd *cobra.Command, _ []string) error {
	text := cfg.Editor.InitialText
	if cmd.Flags().Changed("text") {
		text = playgroundText
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := playground.New(ctx, playground.Config{
		Text:      text,
		VimMode:   cfg.Editor.VimMode,
		UndoLimit: cfg.Editor.UndoLimit,
	})
	log.SetSession(model.Session())
	defer log.SetSession("")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running playground: %w", err)
	}

	if saveVimMode {
		if m, ok := final.(playground.Model); ok {
			return saveEditor(m.VimEnabled())
		}
	}
	return nil
}

func saveEditor(vimMode bool) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = localConfigPath
	}
	editor := cfg.Editor
	editor.VimMode = vimMode
	if err := config.SaveEditor(path, editor); err != nil {
		return fmt.Errorf("saving editor settings: %w", err)
	}
	log.Info(log.CatConfig, "saved editor settings", "path", path, "vim_mode", vimMode)
	return nil
}
