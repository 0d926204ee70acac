package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/reconcile"
	"github.com/alexanderramin/studylog/internal/service"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"PART", "TIME"},
		[][]string{{"1", "00:01:00"}, {"12b", "100:00:00"}},
		AlignRight(1),
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "PART       TIME", lines[0])
	assert.Equal(t, "1      00:01:00", lines[2])
	assert.Equal(t, "12b   100:00:00", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderShare(t *testing.T) {
	assert.Contains(t, stripANSI(RenderShare(1, 4, 4)), "[█░░░]  25%")
	assert.Contains(t, stripANSI(RenderShare(0, 0, 4)), "[░░░░]   0%")
	assert.Contains(t, stripANSI(RenderShare(9, 3, 4)), "[████] 100%")
}

func TestHumanDate(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", HumanDate(now.Add(-time.Hour), now))
	assert.Equal(t, "Yesterday", HumanDate(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Sep 30, 2022", HumanDate(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Today 09:15", SessionStart(time.Date(2026, 2, 7, 9, 15, 0, 0, time.UTC), now))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "550e8400", stripANSI(TruncID("550e8400-e29b-41d4-a716-446655440000")))
	assert.Equal(t, "--", stripANSI(TruncID("")))
}

func TestPartLabel(t *testing.T) {
	assert.Equal(t, "2b", stripANSI(PartLabel("2b")))
	assert.Equal(t, "12", stripANSI(PartLabel("12")))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 line", Plural(1, "line"))
	assert.Equal(t, "0 lines", Plural(0, "line"))
	assert.Equal(t, "3 sessions", Plural(3, "session"))
}

func TestFormatStatus(t *testing.T) {
	log := domain.Log{
		"1a": {{Start: 0, End: 600}},
		"1b": {{Start: 0, End: 1800}},
		"2":  {{Start: 0, End: 1200}, {Start: 50, End: 10}},
	}
	res := &service.StatusResult{
		LogPath:  "time_log.json",
		Policy:   domain.PolicyPartWithSubparts,
		Totals:   reconcile.Aggregate(log, domain.PolicyPartWithSubparts),
		Sessions: 4,
	}

	out := stripANSI(FormatStatus(res))

	assert.Contains(t, out, "STUDY TIME")
	assert.Contains(t, out, "Part 1")
	assert.Contains(t, out, "00:40:00")
	assert.Contains(t, out, "  1a")
	assert.Contains(t, out, "00:10:00")
	assert.Contains(t, out, "Part 2")
	assert.Contains(t, out, "Total 01:00:00")
	assert.Contains(t, out, "4 sessions · policy subparts")
	assert.Contains(t, out, "1 session end before they start")
}

func TestFormatStatus_PartOnlyHidesSubparts(t *testing.T) {
	log := domain.Log{"1": {{Start: 0, End: 60}}}
	res := &service.StatusResult{
		Policy: domain.PolicyPartOnly,
		Totals: reconcile.Aggregate(log, domain.PolicyPartOnly),
	}

	out := stripANSI(FormatStatus(res))
	assert.Contains(t, out, "Part 1")
	assert.Contains(t, out, "policy part-only")
}

func TestFormatStatus_Empty(t *testing.T) {
	res := &service.StatusResult{LogPath: "time_log.json", Totals: reconcile.Aggregate(domain.Log{}, domain.PolicyPartOnly)}
	assert.Equal(t, "No sessions logged yet in time_log.json.\n", stripANSI(FormatStatus(res)))
}

func TestFormatSessions(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.Local)
	start := time.Date(2026, 2, 7, 9, 0, 0, 0, time.Local).Unix()
	entries := []service.SessionEntry{
		{PartID: "1a", Record: domain.NewSessionRecord("0123456789", start, start+2700, now)},
		{PartID: "2", Record: domain.NewSessionRecord("", start, start-5, now)},
	}

	out := stripANSI(FormatSessions(entries, now))

	assert.Contains(t, out, "SESSIONS")
	assert.Contains(t, out, "Today 09:00")
	assert.Contains(t, out, "00:45:00")
	assert.Contains(t, out, "01234567")
	assert.Contains(t, out, "00:00:00 !")
}

func TestFormatReconcile(t *testing.T) {
	res := &service.ReconcileResult{
		DocumentPath: "/tmp/x/README.md",
		Written:      true,
		Report: reconcile.Report{
			Changed:    []reconcile.Change{{LineNo: 3, Before: "- [ ] Part 1: A", After: "- [ ] Part 1: A [00:01:00]"}},
			Unresolved: []int{7},
			UnusedKeys: []string{"9", "9a"},
			Anomalies:  2,
		},
	}

	out := stripANSI(FormatReconcile(res, true))

	assert.Contains(t, out, "   3 - - [ ] Part 1: A\n")
	assert.Contains(t, out, "+ - [ ] Part 1: A [00:01:00]")
	assert.Contains(t, out, "Updated README.md: 1 line changed")
	assert.Contains(t, out, "line 7: subpart line has no part above it")
	assert.Contains(t, out, "not in document: 9, 9a")
	assert.Contains(t, out, "2 sessions end before they start")
}

func TestFormatReconcile_States(t *testing.T) {
	clean := &service.ReconcileResult{DocumentPath: "README.md"}
	assert.Contains(t, stripANSI(FormatReconcile(clean, false)), "README.md is up to date")

	dry := &service.ReconcileResult{
		DocumentPath: "README.md",
		Report:       reconcile.Report{Changed: []reconcile.Change{{LineNo: 1}, {LineNo: 2}}},
	}
	out := stripANSI(FormatReconcile(dry, false))
	assert.Contains(t, out, "2 lines would change in README.md (dry run)")
	assert.NotContains(t, out, "+ ")
}
