package cli

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#fe8019")
	colorGreen  = lipgloss.Color("#8ec07c")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")

	styleHeader = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleLabel  = lipgloss.NewStyle().Foreground(colorDim)
	styleValue  = lipgloss.NewStyle().Foreground(colorGreen)
)

// renderBox wraps content in a rounded-border box with an optional title.
func renderBox(title, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Padding(1, 2)
	if title != "" {
		return box.Render(styleHeader.Render(title) + "\n\n" + content)
	}
	return box.Render(content)
}

// renderSummary lists question/answer pairs, one per line.
func renderSummary(rows [][2]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, styleLabel.Render(row[0])+" "+styleValue.Render(row[1]))
	}
	return strings.Join(lines, "\n")
}

func assistantHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(colorDim)

	return t
}
