// Package reconcile aggregates logged study sessions and rewrites the
// matching checklist lines of a document with the resulting durations.
//
// Only the bracketed duration of recognised part and subpart lines is ever
// changed; every other byte of the document passes through untouched.
package reconcile

import (
	"sort"
	"strings"

	"github.com/alexanderramin/studylog/internal/domain"
)

// Change records a single rewritten line. LineNo is 1-based.
type Change struct {
	LineNo int
	Before string
	After  string
}

// Report summarises a rewrite pass.
type Report struct {
	Lines int
	// PartLines and SubpartLines count recognised lines, changed or not.
	PartLines    int
	SubpartLines int
	Changed      []Change
	// Unresolved holds the line numbers of subpart lines seen before any
	// part line. They are left unchanged.
	Unresolved []int
	// UnusedKeys lists log keys whose part has no line in the document.
	UnusedKeys []string
	Anomalies  int
}

// Rewrite applies totals to lines, tracking the most recent part line so
// that subpart lines resolve against it. The returned slice has the same
// length as lines.
func Rewrite(lines []string, totals Totals) ([]string, Report) {
	out := make([]string, len(lines))
	rep := Report{Lines: len(lines), Anomalies: totals.Anomalies()}
	seen := make(map[string]bool)
	current := ""

	for i, raw := range lines {
		l := Classify(raw, totals.Policy())
		next := raw

		switch l.Kind {
		case KindPart:
			current = l.Number
			seen[l.Number] = true
			rep.PartLines++
			next = renderPart(l.Number, l.Title, totals.Part(l.Number)) + l.EOL
		case KindSubpart:
			rep.SubpartLines++
			if current == "" {
				rep.Unresolved = append(rep.Unresolved, i+1)
				break
			}
			next = renderSubpart(l.Letter, l.Title, totals.Subpart(current, l.Letter)) + l.EOL
		}

		if next != raw {
			rep.Changed = append(rep.Changed, Change{
				LineNo: i + 1,
				Before: l.Text,
				After:  strings.TrimRight(next, "\r\n"),
			})
		}
		out[i] = next
	}

	for _, part := range totals.Parts() {
		if !seen[part] {
			rep.UnusedKeys = append(rep.UnusedKeys, totals.keysFor(part)...)
		}
	}
	sort.Slice(rep.UnusedKeys, func(i, j int) bool {
		return domain.LessPartID(rep.UnusedKeys[i], rep.UnusedKeys[j])
	})

	return out, rep
}

// Document reconciles a whole document held in memory against log.
func Document(log domain.Log, content string, policy domain.AggregationPolicy) (string, Report) {
	lines, rep := Rewrite(SplitLines(content), Aggregate(log, policy))
	return strings.Join(lines, ""), rep
}

// Dirty reports whether the pass changed anything.
func (r Report) Dirty() bool {
	return len(r.Changed) > 0
}
