package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lixenwraith/natsort"
	"github.com/lixenwraith/natsort/config"
	"github.com/lixenwraith/natsort/internal/logging"
	"github.com/spf13/cobra"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [FILE...]",
		Short: "Sort lines in natural order",
		Long: `Read lines from the given files, or stdin when none are given, and
print them in natural order.

Examples:
  ls | natsort sort
  natsort sort --number.kind none versions.txt     # 1.9 before 1.10
  natsort sort --index names.txt                   # print original line numbers
  natsort sort --watch --config natsort.toml list  # re-sort on settings change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, settings)

			lines, err := readLines(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			index, _ := cmd.Flags().GetBool("index")

			if err := sortAndPrint(cmd, lines, settings, index, logger); err != nil {
				return err
			}

			watch, _ := cmd.Flags().GetBool("watch")
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
			defer stop()
			return watchAndResort(ctx, cmd, cfg, lines, index, logger)
		},
	}

	config.AddSettingsFlags(cmd.Flags(), append(keyPaths, "reverse")...)
	cmd.Flags().Bool("index", false, "Print the zero-based input index of each line instead of the line")
	cmd.Flags().Bool("watch", false, "Re-sort whenever the settings file changes, until interrupted")

	return cmd
}

// readLines reads every line of the named files in order, or of stdin.
func readLines(stdin io.Reader, files []string) ([]string, error) {
	if len(files) == 0 {
		return scanLines(stdin, "stdin")
	}

	var lines []string
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		fileLines, err := scanLines(f, name)
		f.Close()
		if err != nil {
			return nil, err
		}
		lines = append(lines, fileLines...)
	}
	return lines, nil
}

func scanLines(r io.Reader, name string) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return lines, nil
}

func sortAndPrint(cmd *cobra.Command, lines []string, settings config.Settings, printIndex bool, logger *slog.Logger) error {
	opts, err := settings.Options()
	if err != nil {
		return err
	}

	if logger.Enabled(cmd.Context(), logging.LevelTrace) {
		g, err := natsort.NewGenerator(opts)
		if err != nil {
			return err
		}
		for _, line := range lines {
			logger.Log(cmd.Context(), logging.LevelTrace, "key", "input", line, "key", g.StringKey(line).String())
		}
	}

	index, err := natsort.IndexSorted(lines, opts, settings.Reverse)
	if err != nil {
		return err
	}
	logger.Debug("sorted", "lines", len(lines), "number_kind", opts.NumberKind, "reverse", settings.Reverse)

	w := bufio.NewWriter(cmd.OutOrStdout())
	if printIndex {
		for _, i := range index {
			fmt.Fprintln(w, i)
		}
		return w.Flush()
	}

	sorted, err := natsort.OrderByIndex(lines, index)
	if err != nil {
		return err
	}
	for _, line := range sorted {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// watchAndResort prints the lines again each time the settings file changes.
// It returns when ctx is done.
func watchAndResort(ctx context.Context, cmd *cobra.Command, cfg *config.Config, lines []string, printIndex bool, logger *slog.Logger) error {
	opts := config.DefaultWatchOptions()
	opts.Logger = logger

	changes, err := cfg.WatchWithOptions(ctx, opts)
	if err != nil {
		if errors.Is(err, config.ErrNoWatchFile) {
			return fmt.Errorf("--watch requires a settings file: %w", err)
		}
		return err
	}
	defer cfg.StopWatching()
	logger.Info("watching settings file", "path", cfg.FilePath())

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-changes:
			if !ok {
				return nil
			}
			if logWatchEvent(path, logger) {
				continue
			}

			// One reload notifies every changed path; re-sort once
			drainChanges(changes, logger)

			settings, err := cfg.Settings()
			if err == nil {
				err = sortAndPrint(cmd, lines, settings, printIndex, logger)
			}
			if err != nil {
				logger.Warn("settings rejected", "error", err)
			}
		}
	}
}

// logWatchEvent warns about a watcher notification and reports whether path
// was one rather than a changed setting.
func logWatchEvent(path string, logger *slog.Logger) bool {
	switch path {
	case config.EventFileDeleted, config.EventReloadError, config.EventReloadTimeout:
		logger.Warn("settings not reloaded", "event", path)
		return true
	}
	return false
}

// drainChanges discards queued paths without blocking. Notifications queued
// behind them are still logged.
func drainChanges(changes <-chan string, logger *slog.Logger) {
	for {
		select {
		case path, ok := <-changes:
			if !ok {
				return
			}
			logWatchEvent(path, logger)
		default:
			return
		}
	}
}
