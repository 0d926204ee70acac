package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/studylog/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newTrackCmd(app *App) *cobra.Command {
	var part string

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Time a study session and record it",
		Long: `Times one session for a part, records it in the session log and updates
the document totals.

In a terminal the part is prompted for (unless --part is given) and a
stopwatch runs between the start and end keys. Otherwise "start" and "end"
are read as lines from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(cmd, app, part)
		},
	}

	cmd.Flags().StringVarP(&part, "part", "p", "", "Part or subpart identifier (e.g. 0, 1b)")

	return cmd
}

func runTrack(cmd *cobra.Command, app *App, raw string) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.Header("Study Time Tracker"))

	var (
		partID     string
		start, end time.Time
		done       bool
		err        error
	)
	if app.interactive() {
		partID, start, end, done, err = trackInteractive(in, out, app, raw)
	} else {
		partID, start, end, err = trackLines(in, out, app, raw)
		done = err == nil
	}
	if err != nil {
		return err
	}
	if !done {
		fmt.Fprintln(out, formatter.Warn("Session discarded."))
		return nil
	}

	return recordAndSync(cmd.Context(), out, app, partID, start.Unix(), end.Unix())
}

// trackInteractive prompts for the part with huh when needed and runs the
// stopwatch. done is false when the user quits before ending the session.
func trackInteractive(in io.Reader, out io.Writer, app *App, raw string) (partID string, start, end time.Time, done bool, err error) {
	if raw == "" {
		if err = partForm(app, &raw).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return "", start, end, false, nil
			}
			return "", start, end, false, err
		}
	}
	if partID, err = normalizePartID(app.Config.Policy, raw); err != nil {
		return "", start, end, false, err
	}

	final, err := tea.NewProgram(newTrackModel(partID, app.now), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", start, end, false, fmt.Errorf("running timer: %w", err)
	}
	m := final.(trackModel)
	return partID, m.start, m.end, m.phase == trackDone, nil
}

// trackLines is the plain line protocol: a part prompt, then "start" and
// "end" typed on their own lines.
func trackLines(in io.Reader, out io.Writer, app *App, raw string) (partID string, start, end time.Time, err error) {
	if raw == "" {
		if raw, err = promptLine(in, out, "Which part are you working on? (e.g. 0a, 1b): "); err != nil {
			return "", start, end, err
		}
	}
	if partID, err = normalizePartID(app.Config.Policy, raw); err != nil {
		return "", start, end, err
	}

	fmt.Fprintln(out, "Type 'start' to begin timing...")
	if err = waitForWord(in, out, "start"); err != nil {
		return "", start, end, err
	}
	start = app.now()
	fmt.Fprintln(out, formatter.Success("Timer started.")+" Type 'end' when you finish.")

	if err = waitForWord(in, out, "end"); err != nil {
		return "", start, end, err
	}
	end = app.now()
	return partID, start, end, nil
}
