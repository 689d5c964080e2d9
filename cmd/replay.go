package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimcore/internal/log"
	"github.com/zjrosen/vimcore/internal/replay"
	"github.com/zjrosen/vimcore/internal/watcher"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a key script against a buffer and print the result",
	Long: `Feed a key script to a fresh engine and buffer, then print the final
text, cursor, mode and register.

Keys use vim notation: <Esc>, <CR>, <BS>, <Tab>, <C-r>, <lt> for '<'.

Example:
  vimcore replay --text "hello world" --keys "dwP"
  vimcore replay --file notes.txt --script edit.keys --diff
  vimcore replay --file notes.txt --script edit.keys --watch`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

var (
	replayText   string
	replayFile   string
	replayKeys   string
	replayScript string
	replayWatch  bool
	replayDiff   bool
)

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVar(&replayText, "text", "", "initial buffer text")
	replayCmd.Flags().StringVar(&replayFile, "file", "", "read the initial buffer text from a file")
	replayCmd.Flags().StringVar(&replayKeys, "keys", "", "key script")
	replayCmd.Flags().StringVar(&replayScript, "script", "", "read the key script from a file")
	replayCmd.Flags().BoolVar(&replayWatch, "watch", false, "re-run whenever --file or --script changes")
	replayCmd.Flags().BoolVar(&replayDiff, "diff", false, "print a diff of the buffer (default from replay.show_diff)")

	replayCmd.MarkFlagsMutuallyExclusive("text", "file")
	replayCmd.MarkFlagsMutuallyExclusive("keys", "script")
}

func runReplay(cmd *cobra.Command, _ []string) error {
	showDiff := cfg.Replay.ShowDiff
	if cmd.Flags().Changed("diff") {
		showDiff = replayDiff
	}

	if !replayWatch {
		return replayOnce(cmd.Context(), cmd.OutOrStdout(), showDiff)
	}

	var paths []string
	for _, p := range []string{replayFile, replayScript} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return errors.New("--watch needs --file or --script")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchReplay(ctx, cmd.OutOrStdout(), paths, showDiff)
}

func watchReplay(ctx context.Context, out io.Writer, paths []string, showDiff bool) error {
	w, err := watcher.New(watcher.Config{Paths: paths, Debounce: cfg.Replay.WatchDebounce})
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	for {
		// A broken script should not end the watch loop.
		if err := replayOnce(ctx, out, showDiff); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		fmt.Fprintf(out, "-- watching %s (ctrl+c to stop)\n", strings.Join(paths, ", "))

		select {
		case <-ctx.Done():
			return nil
		case path := <-changes:
			log.Info(log.CatReplay, "re-running replay", "changed", path)
		}
	}
}

func replayOnce(ctx context.Context, out io.Writer, showDiff bool) error {
	opts, err := replayOptions()
	if err != nil {
		return err
	}
	limit := cfg.Editor.UndoLimit
	opts.UndoLimit = &limit
	opts.Diff = showDiff

	res, err := replay.Run(ctx, opts)
	if err != nil {
		return err
	}
	printResult(out, res, showDiff)
	return nil
}

func replayOptions() (replay.Options, error) {
	opts := replay.Options{Text: replayText, Script: replayKeys}
	if replayFile != "" {
		data, err := os.ReadFile(replayFile)
		if err != nil {
			return opts, fmt.Errorf("reading text file: %w", err)
		}
		opts.Text = strings.TrimSuffix(string(data), "\n")
	}
	if replayScript != "" {
		data, err := os.ReadFile(replayScript)
		if err != nil {
			return opts, fmt.Errorf("reading key script: %w", err)
		}
		opts.Script = string(data)
	}
	return opts, nil
}

func printResult(out io.Writer, res replay.Result, showDiff bool) {
	fmt.Fprintln(out, res.Text)
	fmt.Fprintln(out, "---")
	fmt.Fprintf(out, "cursor:   %d:%d\n", res.Row+1, res.Col+1)
	fmt.Fprintf(out, "mode:     %s\n", res.Mode)

	kind := "charwise"
	if res.Register.Linewise {
		kind = "linewise"
	}
	fmt.Fprintf(out, "register: %q (%s)\n", res.Register.Text, kind)

	if res.Pending != "" {
		fmt.Fprintf(out, "pending:  %s\n", res.Pending)
	}
	for _, msg := range res.Outputs {
		fmt.Fprintf(out, "output:   %s\n", msg)
	}
	if res.Submitted {
		fmt.Fprintln(out, "submitted")
	}
	if res.Cleared {
		fmt.Fprintln(out, "cleared")
	}
	if showDiff && res.Diff != "" {
		fmt.Fprintln(out, "---")
		fmt.Fprint(out, res.Diff)
	}
}
