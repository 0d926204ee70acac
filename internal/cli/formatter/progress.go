package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders a part's share of the total like [████░░░░]  45%.
func RenderShare(part, total int64, width int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(part) / float64(total)
	}
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := StylePurple.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))

	return fmt.Sprintf("[%s] %3.0f%%", bar, pct*100)
}
