package cli

import (
	"fmt"

	"github.com/alexanderramin/confplan/internal/cli/formatter"
	"github.com/alexanderramin/confplan/internal/contract"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var summary bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "confplan [file]",
		Short: "Arrange conference talks into tracks",
		Long: `Arrange conference talks into as few tracks as possible.

Each track has a morning session (09:00-12:00) and an afternoon session
(13:00-17:00). Talks are read from the named file (plain text, .json or
.yaml), CONFPLAN_INPUT, piped stdin, or a built-in sample.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			talks, problems, err := loadTalks(app, args)
			if err != nil {
				return err
			}
			if err := reportProblems(cmd.ErrOrStderr(), problems, strict); err != nil {
				return err
			}

			resp, err := app.Schedule.Plan(cmd.Context(), contract.NewScheduleRequest(talks))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if app.styled() {
				fmt.Fprint(out, formatter.FormatScheduleStyled(resp.Tracks))
			} else {
				fmt.Fprint(out, formatter.FormatSchedule(resp.Tracks))
			}
			if summary {
				fmt.Fprint(out, formatter.FormatSummary(resp))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "Append per-track session usage")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on any unparseable talk instead of skipping it")

	return cmd
}
