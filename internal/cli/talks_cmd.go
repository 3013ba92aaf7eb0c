package cli

import (
	"fmt"

	"github.com/alexanderramin/confplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTalksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "talks [file]",
		Short: "List the talks that would be scheduled",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			talks, problems, err := loadTalks(app, args)
			if err != nil {
				return err
			}
			if err := reportProblems(cmd.ErrOrStderr(), problems, false); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTalkList(talks))
			return nil
		},
	}
}
