package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studylog/internal/cli/formatter"
	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

type trackPhase int

const (
	trackReady trackPhase = iota
	trackRunning
	trackDone
	trackAborted
)

// trackModel is the full-screen timer of "studylog track". Start and end
// instants come from the injected clock; the stopwatch only drives the
// on-screen counter.
type trackModel struct {
	part  string
	now   func() time.Time
	phase trackPhase
	watch stopwatch.Model
	start time.Time
	end   time.Time
}

func newTrackModel(part string, now func() time.Time) trackModel {
	return trackModel{
		part:  part,
		now:   now,
		watch: stopwatch.NewWithInterval(time.Second),
	}
}

func (m trackModel) Init() tea.Cmd {
	return nil
}

func (m trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc", "q":
			m.phase = trackAborted
			return m, tea.Quit
		case "enter", " ", "s", "e":
			return m.advance(key.String())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.watch, cmd = m.watch.Update(msg)
	return m, cmd
}

// advance moves ready -> running -> done. "s" only starts and "e" only ends.
func (m trackModel) advance(key string) (tea.Model, tea.Cmd) {
	switch {
	case m.phase == trackReady && key != "e":
		m.phase = trackRunning
		m.start = m.now()
		return m, m.watch.Start()
	case m.phase == trackRunning && key != "s":
		m.phase = trackDone
		m.end = m.now()
		return m, tea.Quit
	}
	return m, nil
}

func (m trackModel) elapsed() time.Duration {
	switch m.phase {
	case trackRunning:
		return m.watch.Elapsed()
	case trackDone:
		return m.end.Sub(m.start)
	}
	return 0
}

func (m trackModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", formatter.Header("Part"), formatter.PartLabel(m.part))
	clock := domain.FormatDuration(m.elapsed())

	switch m.phase {
	case trackReady:
		fmt.Fprintf(&b, "  %s\n\n", formatter.Dim(clock))
		b.WriteString(formatter.Dim("enter/s start · q quit") + "\n")
	case trackRunning:
		fmt.Fprintf(&b, "  %s\n\n", formatter.StyleGreen.Render(clock))
		b.WriteString(formatter.Dim("enter/e end · q discard") + "\n")
	case trackDone:
		fmt.Fprintf(&b, "  %s\n", formatter.Success(clock))
	case trackAborted:
		b.WriteString(formatter.Warn("Session discarded.") + "\n")
	}
	return b.String()
}
