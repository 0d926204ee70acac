package formatter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/studylog/internal/service"
)

// FormatReconcile summarises a reconciliation pass. With showChanges every
// rewritten line is listed as a before/after pair.
func FormatReconcile(res *service.ReconcileResult, showChanges bool) string {
	var b strings.Builder
	rep := res.Report
	name := filepath.Base(res.DocumentPath)

	if showChanges {
		for _, c := range rep.Changed {
			fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%4d", c.LineNo)), StyleRed.Render("- "+c.Before))
			fmt.Fprintf(&b, "%s %s\n", Dim("    "), StyleGreen.Render("+ "+c.After))
		}
	}

	switch {
	case !rep.Dirty():
		b.WriteString(Dim(fmt.Sprintf("%s is up to date", name)) + "\n")
	case res.Written:
		b.WriteString(Success(fmt.Sprintf("Updated %s: %s changed", name, Plural(len(rep.Changed), "line"))) + "\n")
	default:
		b.WriteString(Dim(fmt.Sprintf("%s would change in %s (dry run)", Plural(len(rep.Changed), "line"), name)) + "\n")
	}

	for _, n := range rep.Unresolved {
		b.WriteString(Warn(fmt.Sprintf("line %d: subpart line has no part above it; left unchanged", n)) + "\n")
	}
	if len(rep.UnusedKeys) > 0 {
		b.WriteString(Dim("not in document: "+strings.Join(rep.UnusedKeys, ", ")) + "\n")
	}
	if rep.Anomalies > 0 {
		b.WriteString(Warn(fmt.Sprintf("%s end before they start and count as zero", Plural(rep.Anomalies, "session"))) + "\n")
	}
	return b.String()
}
