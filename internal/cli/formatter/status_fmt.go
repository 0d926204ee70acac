package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/service"
)

const shareBarWidth = 12

// FormatStatus renders per-part totals with their subparts nested beneath.
func FormatStatus(res *service.StatusResult) string {
	totals := res.Totals
	parts := totals.Parts()
	if len(parts) == 0 {
		return Dim(fmt.Sprintf("No sessions logged yet in %s.", res.LogPath)) + "\n"
	}

	grand := totals.Grand()
	headers := []string{"PART", "TIME", "SHARE"}
	var rows [][]string
	for _, p := range parts {
		secs := totals.Part(p)
		rows = append(rows, []string{
			Bold("Part " + p),
			DurationStyled(domain.FormatHMS(secs)),
			RenderShare(secs, grand, shareBarWidth),
		})
		if !res.Policy.Subparts() {
			continue
		}
		for _, sub := range totals.Subparts(p) {
			if sub == "" {
				continue
			}
			rows = append(rows, []string{
				"  " + PartLabel(p+sub),
				DurationStyled(domain.FormatHMS(totals.Subpart(p, sub))),
				"",
			})
		}
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, AlignRight(1)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s\n",
		Bold("Total"),
		StyleGreen.Render(domain.FormatHMS(grand)),
		Dim(fmt.Sprintf("%s · policy %s", Plural(res.Sessions, "session"), res.Policy)),
	)
	if n := totals.Anomalies(); n > 0 {
		b.WriteString(Warn(fmt.Sprintf("%s end before they start and count as zero", Plural(n, "session"))) + "\n")
	}
	return RenderBox("Study Time", b.String())
}
