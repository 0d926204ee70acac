package formatter

import (
	"time"

	"github.com/alexanderramin/studylog/internal/service"
)

// FormatSessions renders a table of logged sessions.
func FormatSessions(entries []service.SessionEntry, now time.Time) string {
	headers := []string{"PART", "STARTED", "DURATION", "ID"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		dur := DurationStyled(e.Record.Duration)
		if e.Record.Negative() {
			dur = StyleRed.Render(e.Record.Duration + " !")
		}
		rows = append(rows, []string{
			PartLabel(e.PartID),
			SessionStart(e.Record.StartTime(), now),
			dur,
			TruncID(e.Record.ID),
		})
	}
	return RenderBox("Sessions", RenderTable(headers, rows, AlignRight(2)))
}
