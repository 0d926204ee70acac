package reconcile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/studylog/internal/domain"
)

// LineKind tags the variant of a classified document line.
type LineKind string

const (
	KindOpaque  LineKind = "opaque"
	KindPart    LineKind = "part"
	KindSubpart LineKind = "subpart"
)

// Hours may exceed two digits once a part passes 99 hours; the bracket
// patterns accept that so a rewritten line is always recognised again.
var (
	partPattern    = regexp.MustCompile(`^- \[ \] Part (\d+):(.+?)( \[\d{2,}:\d{2}:\d{2}\])?$`)
	subpartPattern = regexp.MustCompile(`^\s+- ([a-z])\. (.+?) \[\d{2,}:\d{2}:\d{2}\]$`)
)

// Line is one document line with its terminator split off.
type Line struct {
	Kind LineKind
	// Text is the line content without its terminator.
	Text string
	// EOL is "\n", "\r\n", or "" for an unterminated final line.
	EOL string

	Number string // part lines
	Letter string // subpart lines
	Title  string
}

// Classify matches a single line (terminator included) against the
// checklist patterns of policy.
func Classify(raw string, policy domain.AggregationPolicy) Line {
	text, eol := splitEOL(raw)
	l := Line{Kind: KindOpaque, Text: text, EOL: eol}

	if m := partPattern.FindStringSubmatch(text); m != nil {
		l.Kind = KindPart
		l.Number = m[1]
		l.Title = strings.TrimSpace(m[2])
		return l
	}
	if policy.Subparts() {
		if m := subpartPattern.FindStringSubmatch(text); m != nil {
			l.Kind = KindSubpart
			l.Letter = m[1]
			l.Title = m[2]
		}
	}
	return l
}

// String reassembles the line exactly as it was read.
func (l Line) String() string {
	return l.Text + l.EOL
}

func renderPart(number, title string, seconds int64) string {
	return fmt.Sprintf("- [ ] Part %s: %s [%s]", number, title, domain.FormatHMS(seconds))
}

func renderSubpart(letter, title string, seconds int64) string {
	return fmt.Sprintf("    - %s. %s [%s]", letter, title, domain.FormatHMS(seconds))
}

func splitEOL(raw string) (string, string) {
	switch {
	case strings.HasSuffix(raw, "\r\n"):
		return raw[:len(raw)-2], "\r\n"
	case strings.HasSuffix(raw, "\n"):
		return raw[:len(raw)-1], "\n"
	}
	return raw, ""
}

// SplitLines splits content into lines that keep their terminators, so that
// concatenating the result reproduces content byte for byte.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(content, "\n")+1)
	for content != "" {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}
