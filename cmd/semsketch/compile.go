package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/c360studio/semsketch/diagram"
	"github.com/c360studio/semsketch/export"
)

func compileCmd() *cobra.Command {
	var formatName, output string
	cmd := &cobra.Command{
		Use:   "compile <file|glob>...",
		Short: "Compile diagram documents into RDF statements",
		Long: `Compile reads one or more diagram documents, merges the generated
statements with the document's raw statements, and writes the result in
the selected format. Arguments may be file paths or doublestar glob
patterns; with multiple inputs, each output is written next to its
source with the format's extension.`,
		Args: cobra.MinimumNArgs(1),
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

			files, err := expandGlobs(args)
			if err != nil {
				return err
			}
			if len(files) > 1 && output != "" {
				return fmt.Errorf("--output is only valid with a single input file")
			}

			for _, file := range files {
				out, count, err := compileFile(file, format, cfg.Strict())
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				logger.Debug("compiled document",
					slog.String("file", file),
					slog.Int("statements", count))

				switch {
				case output != "":
					if err := os.WriteFile(output, []byte(out), 0644); err != nil {
						return err
					}
				case len(files) == 1:
					fmt.Fprint(cmd.OutOrStdout(), out)
				default:
					dest := derivedPath(file, format)
					if err := os.WriteFile(dest, []byte(out), 0644); err != nil {
						return err
					}
					logger.Info("wrote output", slog.String("file", dest))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "output format: block or ntriples (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single input only)")
	return cmd
}

func compileFile(path string, format export.Format, strict bool) (string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	doc, err := diagram.Parse(data)
	if err != nil {
		return "", 0, err
	}
	set, err := export.Statements(doc, strict)
	if err != nil {
		return "", 0, err
	}
	out, err := export.NewExporter(doc.Prefixes).Export(set, format)
	if err != nil {
		return "", 0, err
	}
	return out, len(set), nil
}

// expandGlobs resolves file arguments and doublestar patterns into a
// deduplicated, lexicographically ordered file list, so batch output is
// deterministic.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func derivedPath(file string, format export.Format) string {
	info, _ := export.GetFormatInfo(format)
	return strings.TrimSuffix(file, filepath.Ext(file)) + info.Extension
}
