package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/alexanderramin/confplan/internal/config"
	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/importer"
	"github.com/alexanderramin/confplan/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App with plain output and an interactive (ignored) stdin.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Schedule:         service.NewScheduleService(),
		Config:           config.Config{Color: config.ColorNever},
		IsInteractive:    func() bool { return true },
		IsTerminalOutput: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout and stderr separately.
func executeCmd(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeTalkFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- Root command ---

func TestRootCmd_NoInputUsesSample(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Track 1\n09:00:00 Writing Fast Tests Against Enterprise Rails 60min\n"))
	assert.Contains(t, out, "Track 2\n")
	assert.NotContains(t, out, "Track 3")
	assert.Equal(t, 2, strings.Count(out, "12:00:00 Lunch"))
}

func TestRootCmd_FileArgument(t *testing.T) {
	path := writeTalkFile(t, "talks.txt", "> Common Ruby Errors 45min\n> Rails for Python Developers lightning\n")

	out, _, err := executeCmd(t, testApp(t), path)
	require.NoError(t, err)
	assert.Equal(t,
		"Track 1\n09:00:00 Common Ruby Errors 45min\n09:45:00 Rails for Python Developers lightning\n"+
			"12:00:00 Lunch\n17:00:00 Networking Event\n\n",
		out)
}

func TestRootCmd_ConfigInputPath(t *testing.T) {
	app := testApp(t)
	app.Config.InputPath = writeTalkFile(t, "talks.yaml", "talks:\n  - title: Woah\n    duration: 30min\n")

	out, _, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "09:00:00 Woah 30min")
}

func TestRootCmd_PipedStdin(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }
	app.Stdin = strings.NewReader("> Rails Magic 60min\n")

	out, _, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "09:00:00 Rails Magic 60min")
	assert.NotContains(t, out, "Woah")
}

func TestRootCmd_EmptyInputPrintsNothing(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }
	app.Stdin = strings.NewReader("")

	out, _, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootCmd_SkipsBadLinesWithWarning(t *testing.T) {
	path := writeTalkFile(t, "talks.txt", "> Good 30min\n> Bad min\n")

	out, errOut, err := executeCmd(t, testApp(t), path)
	require.NoError(t, err)
	assert.Contains(t, out, "Good 30min")
	assert.NotContains(t, out, "Bad")
	assert.Contains(t, errOut, "skipped line 2")
}

func TestRootCmd_StrictFailsOnBadLines(t *testing.T) {
	path := writeTalkFile(t, "talks.txt", "> Good 30min\n> Bad min\n")

	out, _, err := executeCmd(t, testApp(t), "--strict", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, importer.ErrParseFailure)
	assert.Contains(t, err.Error(), "1 invalid talk(s)")
	assert.Empty(t, out)
}

func TestRootCmd_ReadErrorFailsWithoutStrict(t *testing.T) {
	readErr := errors.New("stdin closed early")
	app := testApp(t)
	app.IsInteractive = func() bool { return false }
	app.Stdin = io.MultiReader(strings.NewReader("> Good 30min\n"), iotest.ErrReader(readErr))

	out, errOut, err := executeCmd(t, app)
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "reading talks")
	assert.Empty(t, out, "a failed read must not print a partial schedule")
	assert.NotContains(t, errOut, "skipped")
}

func TestRootCmd_UnplaceableTalk(t *testing.T) {
	path := writeTalkFile(t, "talks.txt", "> Marathon 300min\n")

	_, _, err := executeCmd(t, testApp(t), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnplaceableTalk)
	assert.Contains(t, err.Error(), "Marathon")
}

func TestRootCmd_MissingFile(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading talks")
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "a.txt", "b.txt")
	assert.Error(t, err)
}

func TestRootCmd_Summary(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t), "--summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Networking Event")
	assert.Contains(t, out, "lower bound 2")
}

func TestRootCmd_StyledOutput(t *testing.T) {
	app := testApp(t)
	app.Config.Color = config.ColorAlways

	out, _, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "TRACK 1")
	assert.NotContains(t, out, "Track 1\n")
}

// --- talks command ---

func TestTalksCmd_ListsSample(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t), "talks")
	require.NoError(t, err)
	assert.Contains(t, out, "Rails for Python Developers")
	assert.Contains(t, out, "lightning")
	assert.Contains(t, out, "19 talks, 785 min")
}

// --- sample command ---

func TestSampleCmd_PrintsSampleInput(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t), "sample")
	require.NoError(t, err)
	assert.Equal(t, importer.SampleInput, out)
}
