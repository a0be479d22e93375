// Package main provides the semsketch binary entry point. Semsketch
// compiles sketched diagram documents into RDF ontology statements and
// serializes them as a grouped block format or a flat statement list.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/c360studio/semsketch/config"
)

const (
	Version = "0.1.0"
	appName = "semsketch"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Compile sketched diagrams into RDF ontology statements",
		Version: Version,
		Long: `Semsketch validates diagram documents (rectangles, diamonds, arrows
with short text labels), compiles them into RDF statements, and emits
deterministic textual output.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	cmd.AddCommand(
		validateCmd(),
		compileCmd(),
		canonCmd(),
		watchCmd(),
		initCmd(),
	)
	return cmd
}

// newLogger builds the CLI logger honoring the persistent verbose flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig(logger *slog.Logger) (*config.Config, error) {
	return config.NewLoader(logger).Load()
}
