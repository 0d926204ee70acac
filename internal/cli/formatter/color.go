package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PartLabel renders a log key such as "2b" with the subpart letter highlighted.
func PartLabel(id string) string {
	i := len(id)
	for i > 0 && (id[i-1] < '0' || id[i-1] > '9') {
		i--
	}
	if i == len(id) {
		return StyleBold.Render(id)
	}
	return StyleBold.Render(id[:i]) + StylePurple.Render(id[i:])
}

// DurationStyled colors a HH:MM:SS string: dim when zero, green otherwise.
func DurationStyled(hms string) string {
	if strings.Trim(hms, "0:") == "" {
		return StyleDim.Render(hms)
	}
	return StyleGreen.Render(hms)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Warn renders a yellow warning line prefixed with a marker.
func Warn(text string) string {
	return StyleYellow.Render("! " + text)
}

// Success renders a green confirmation line.
func Success(text string) string {
	return StyleGreen.Render("✔ " + text)
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
