package cli

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorAccent = lipgloss.Color("203")
	colorGreen  = lipgloss.Color("42")
	colorDim    = lipgloss.Color("243")
	colorFg     = lipgloss.Color("252")

	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	clockStyle  = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
	phaseStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	badgeStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	barOnStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	barOffStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// isInteractive reports whether stdin is attached to a terminal.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// focuswaveHuhTheme themes huh forms to match the rest of the TUI.
func focuswaveHuhTheme() *huh.Theme {
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

	return t
}

// renderBar draws a fixed-width progress bar for the timer view.
func renderBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += barOnStyle.Render("█")
		} else {
			bar += barOffStyle.Render("░")
		}
	}
	return bar
}
