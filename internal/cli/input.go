package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/confplan/internal/cli/formatter"
	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/importer"
)

// loadTalks picks the talk source: an explicit file, CONFPLAN_INPUT, piped
// stdin, or the built-in sample, in that order.
func loadTalks(app *App, args []string) ([]domain.Talk, []error, error) {
	path := app.Config.InputPath
	if len(args) > 0 {
		path = args[0]
	}
	if path != "" {
		talks, problems, err := importer.LoadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading talks: %w", err)
		}
		return talks, problems, nil
	}

	if app.Stdin != nil && !app.interactive() {
		talks, problems := importer.ParseLines(app.Stdin)
		return talks, problems, nil
	}

	talks, problems := importer.ParseLines(strings.NewReader(importer.SampleInput))
	return talks, problems, nil
}

// reportProblems prints skipped talks as warnings, or fails when strict.
// Problems that are not about a single talk, such as a failed read, always
// fail so a truncated input never yields a partial schedule.
func reportProblems(w io.Writer, problems []error, strict bool) error {
	if len(problems) == 0 {
		return nil
	}
	for _, p := range problems {
		if !isSkippable(p) {
			return p
		}
	}
	if strict {
		return fmt.Errorf("%d invalid talk(s): %w", len(problems), errors.Join(problems...))
	}
	for _, p := range problems {
		fmt.Fprintln(w, formatter.Warning("skipped "+p.Error()))
	}
	return nil
}

func isSkippable(err error) bool {
	var parseErr *importer.ParseError
	var entryErr *importer.EntryError
	return errors.As(err, &parseErr) || errors.As(err, &entryErr)
}
