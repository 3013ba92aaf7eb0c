package cli

import (
	"fmt"

	"github.com/alexanderramin/confplan/internal/importer"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample talk list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), importer.SampleInput)
			return nil
		},
	}
}
