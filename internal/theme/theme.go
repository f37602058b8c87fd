package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the demo UI.
type Styles struct {
	Header     *lipgloss.Style
	Screen     *lipgloss.Style
	Spoken     *lipgloss.Style
	Interrupt  *lipgloss.Style
	Status     *lipgloss.Style
	Error      *lipgloss.Style
	Footer     *lipgloss.Style
	FormPrompt *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Screen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Spoken: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Interrupt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FormPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
}

// Default returns the default style set.
func Default() Styles {
	return defaultStyles
}

func ptr(s lipgloss.Style) *lipgloss.Style {
	return &s
}
