package cli

import (
	"github.com/alexanderramin/studylog/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// studylogHuhTheme returns a huh theme in the formatter palette.
func studylogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// partInput returns a huh.Input that accepts part identifiers valid under
// the active policy.
func partInput(app *App, value *string) *huh.Input {
	placeholder := "0a, 1b, 2"
	if !app.Config.Policy.Subparts() {
		placeholder = "0, 1, 2"
	}
	return huh.NewInput().
		Title("Which part are you working on?").
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			_, err := normalizePartID(app.Config.Policy, s)
			return err
		})
}

func partForm(app *App, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(partInput(app, value)),
	).WithTheme(studylogHuhTheme()).WithShowHelp(false)
}
