package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/semsketch/canonical"
	"github.com/c360studio/semsketch/diagram"
)

func canonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canon <file>",
		Short: "Print the canonical JSON encoding of a document",
		Long: `Canon validates a diagram document and prints its canonical JSON
encoding: object keys sorted by code-point order, compact separators.
The canonical encoding is the persisted representation; encoding it
again yields the identical string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if _, err := diagram.Parse(data); err != nil {
				return err
			}
			out, err := canonical.EncodeString(string(data))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
