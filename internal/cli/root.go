package cli

import (
	"io"

	"github.com/alexanderramin/confplan/internal/config"
	"github.com/alexanderramin/confplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and process environment used by CLI commands.
type App struct {
	Schedule service.ScheduleService
	Config   config.Config

	// Stdin is read for talks when no file is named and it is not a terminal.
	Stdin io.Reader
	// IsInteractive reports whether Stdin is a terminal.
	IsInteractive func() bool
	// IsTerminalOutput reports whether stdout is a terminal.
	IsTerminalOutput func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive == nil || a.IsInteractive()
}

func (a *App) styled() bool {
	return a.Config.Styled(a.IsTerminalOutput != nil && a.IsTerminalOutput())
}

// NewRootCmd creates the top-level "confplan" command, which schedules talks,
// and registers the subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := newScheduleCmd(app)

	root.AddCommand(
		newTalksCmd(app),
		newSampleCmd(),
	)

	return root
}
