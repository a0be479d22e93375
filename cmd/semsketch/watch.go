package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/c360studio/semsketch/canonical"
	"github.com/c360studio/semsketch/diagram"
	"github.com/c360studio/semsketch/export"
	"github.com/c360studio/semsketch/history"
)

func watchCmd() *cobra.Command {
	var formatName, output string
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Recompile a diagram document on every change",
		Long: `Watch observes a diagram document and recompiles it whenever the
file changes. The canonical encoding is used for change detection: a
save that does not change the document semantically is skipped. An
invalid document is reported and the previous output is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}
			if formatName == "" {
				formatName = cfg.Output.Format
			}
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if output == "" {
				output = derivedPath(args[0], format)
			}
			return watch(cmd, args[0], output, format, cfg.Strict(), cfg.Watch.Debounce, logger)
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "output format: block or ntriples (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with format extension)")
	return cmd
}

func watch(cmd *cobra.Command, file, output string, format export.Format, strict bool, debounce time.Duration, logger *slog.Logger) error {
	target, err := filepath.Abs(file)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := history.New()
	logger.Info("watching",
		slog.String("file", file),
		slog.String("output", output),
		slog.String("session", session.SessionID()))

	recompile(target, output, format, strict, session, logger)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				pending = time.After(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.String("error", err.Error()))
		case <-pending:
			pending = nil
			recompile(target, output, format, strict, session, logger)
		}
	}
}

// recompile reads, validates and compiles the document. A document that
// canonicalizes to the current history snapshot is skipped; an invalid
// document is logged and the previous output stays in place.
func recompile(target, output string, format export.Format, strict bool, session *history.History, logger *slog.Logger) {
	data, err := os.ReadFile(target)
	if err != nil {
		logger.Warn("read failed", slog.String("error", err.Error()))
		return
	}
	doc, err := diagram.Parse(data)
	if err != nil {
		logger.Warn("document rejected", slog.String("error", err.Error()))
		return
	}

	canon, err := canonical.EncodeString(string(data))
	if err != nil {
		logger.Warn("canonicalize failed", slog.String("error", err.Error()))
		return
	}
	if current, ok := session.Current(); ok && current == canon {
		logger.Debug("no semantic change, skipping")
		return
	}

	set, err := export.Statements(doc, strict)
	if err != nil {
		logger.Warn("document rejected", slog.String("error", err.Error()))
		return
	}
	out, err := export.NewExporter(doc.Prefixes).Export(set, format)
	if err != nil {
		logger.Warn("export failed", slog.String("error", err.Error()))
		return
	}
	if err := os.WriteFile(output, []byte(out), 0644); err != nil {
		logger.Warn("write failed", slog.String("error", err.Error()))
		return
	}

	session.Push(canon)
	logger.Info("compiled",
		slog.String("output", output),
		slog.Int("statements", len(set)),
		slog.Int("snapshots", session.Len()))
}
