package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - slide titles, indicator
	ColorHighlight = "205" // Magenta - modal borders, active hotspots
	ColorMuted     = "241" // Gray - hints, status bar chrome
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - unrevealed hint, bar background
)

// Styles contains shared style definitions used across the presenter and chrome.
var Styles = struct {
	Title     lipgloss.Style // Slide title line
	Slide     lipgloss.Style // Slide content area padding
	Indicator lipgloss.Style // current/total position indicator
	Bar       lipgloss.Style // Status bar base
	BarButton lipgloss.Style // Clickable footer buttons (notes, home)
	Hint      lipgloss.Style // Help/hint text
	Empty     lipgloss.Style // Empty deck / missing page text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Slide: lipgloss.NewStyle().
		Padding(1, 2),
	Indicator: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	BarButton: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// ModalStyles contains shared style definitions for the overlay dialogs.
var ModalStyles = struct {
	Box   lipgloss.Style // Modal box (rounded highlight border)
	Title lipgloss.Style // Modal title
	Body  lipgloss.Style // Modal body content
	Help  lipgloss.Style // Dismiss hint line
}{
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
