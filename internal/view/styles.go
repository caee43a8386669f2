// Package view implements the terminal UI: a page router over the catalog
// and the local interaction store.
package view

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette, loosely after the DC house colors.
var (
	colorPrimary = lipgloss.Color("#2196F3") // blue
	colorAccent  = lipgloss.Color("#FFC107") // gold
	colorDanger  = lipgloss.Color("#e53935")
	colorSuccess = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("240")
)

// Styles holds every lipgloss style the pages render with.
type Styles struct {
	Header   lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
	ToggleOn lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Empty    lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1),
		Tab:      lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
		TabOn:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(colorPrimary),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Badge:    lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		ToggleOn: lipgloss.NewStyle().Foreground(colorAccent),
		Success:  lipgloss.NewStyle().Foreground(colorSuccess),
		Error:    lipgloss.NewStyle().Foreground(colorDanger),
		Help:     lipgloss.NewStyle().Foreground(colorMuted),
		Empty:    lipgloss.NewStyle().Foreground(colorMuted).Padding(1, 2),
	}
}
