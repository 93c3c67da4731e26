// Package tui is the terminal dashboard: login, products, and user
// management pages over the editor state machines.
package tui

import "github.com/charmbracelet/lipgloss"

// MAJA palette.
var (
	colorPrimary = lipgloss.Color("#6366F1") // indigo
	colorAccent  = lipgloss.Color("#8BC34A")
	colorDanger  = lipgloss.Color("#E53935")
	colorWarning = lipgloss.Color("#FFC107")
	colorMuted   = lipgloss.Color("#6B7280")
	colorBorder  = lipgloss.Color("#374151")
)

// Styles holds the lipgloss styles shared by every page.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	ErrorBox lipgloss.Style
	Success  lipgloss.Style
	Danger   lipgloss.Style
	Help     lipgloss.Style
	Modal    lipgloss.Style
	Label    lipgloss.Style
	Inline   lipgloss.Style
	NavOn    lipgloss.Style
	NavOff   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Body:     lipgloss.NewStyle(),
		Bold:     lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		ErrorBox: lipgloss.NewStyle().Foreground(colorDanger).Border(lipgloss.NormalBorder()).BorderForeground(colorDanger).Padding(0, 1),
		Success:  lipgloss.NewStyle().Foreground(colorAccent),
		Danger:   lipgloss.NewStyle().Foreground(colorDanger),
		Help:     lipgloss.NewStyle().Foreground(colorMuted),
		Modal:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(1, 2),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Inline:   lipgloss.NewStyle().Foreground(colorDanger),
		NavOn:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		NavOff:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}
