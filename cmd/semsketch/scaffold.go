package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c360studio/semsketch/canonical"
	"github.com/c360studio/semsketch/config"
	"github.com/c360studio/semsketch/diagram"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter diagram document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			if err := config.NewLoader(logger).EnsureUserConfig(); err != nil {
				logger.Warn("could not create user config", slog.String("error", err.Error()))
			}

			file := "diagram.json"
			if len(args) == 1 {
				file = args[0]
			}
			if _, err := os.Stat(file); err == nil {
				return fmt.Errorf("%s already exists", file)
			}

			out, err := canonical.Encode(starterDocument())
			if err != nil {
				return err
			}
			if err := os.WriteFile(file, []byte(out), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", file)
			return nil
		},
	}
}

// starterDocument builds a minimal valid document: one class diamond,
// one attribute arrow, one datatype rectangle.
func starterDocument() diagram.Document {
	diamondID := uuid.New().String()
	rectangleID := uuid.New().String()
	arrowID := uuid.New().String()

	return diagram.Document{
		Prefixes: map[string]string{
			"example": "https://example.org/ns#",
		},
		Domain: "example",
		Elements: diagram.ElementMap{
			diamondID: diagram.Diamond{
				ID: diamondID, X: 80, Y: 80, Width: 160, Height: 96,
				Text: "example:Thing (DC)",
			},
			rectangleID: diagram.Rectangle{
				ID: rectangleID, X: 360, Y: 96, Width: 128, Height: 64,
				Text: "xsd:string",
			},
			arrowID: diagram.Arrow{
				ID: arrowID, X1: 240, Y1: 128, X2: 360, Y2: 128,
				Text:   "example:name (1..1 PK1)",
				Source: &diamondID,
				Target: &rectangleID,
			},
		},
		RawStatements: "",
	}
}
