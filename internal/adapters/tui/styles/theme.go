package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Accent = lipgloss.Color("#7C3AED")
	Alert  = lipgloss.Color("#E11D48")
	Calm   = lipgloss.Color("#10B981")
	Dim    = lipgloss.Color("#6B7280")
	Paper  = lipgloss.Color("#FFFFFF")
)

var (
	Frame = lipgloss.NewStyle().Padding(1, 2)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		MarginBottom(1)

	Caption = lipgloss.NewStyle().
		Foreground(Dim).
		Italic(true)

	Section = lipgloss.NewStyle().
		Foreground(Calm).
		Bold(true)

	Row         = lipgloss.NewStyle()
	RowSelected = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Paper).
			Bold(true)

	Dot   = lipgloss.NewStyle().Foreground(Alert)
	Pill  = lipgloss.NewStyle().Background(Alert).Foreground(Paper).Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Dim)

	Key     = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	KeyDesc = lipgloss.NewStyle().Foreground(Dim)
	KeySep  = lipgloss.NewStyle().Foreground(Dim).SetString(" • ")

	StatusOK  = lipgloss.NewStyle().Foreground(Calm).Bold(true)
	StatusErr = lipgloss.NewStyle().Foreground(Alert).Bold(true)
)

// BadgeDot renders the redpoint marker, or blank space when total is 0
func BadgeDot(total int) string {
	if total <= 0 {
		return "  "
	}
	return Dot.Render("● ")
}

// BadgePill renders the total in a filled pill, or "" when total is 0
func BadgePill(total int) string {
	if total <= 0 {
		return ""
	}
	return Pill.Render(fmt.Sprintf(" %d ", total))
}

// KeyHint renders "key desc" for a help line
func KeyHint(key, desc string) string {
	return Key.Render(key) + " " + KeyDesc.Render(desc)
}
