package ui

import "github.com/charmbracelet/lipgloss"

// Styles covers the panel chrome only. Child output is never styled.
type Styles struct {
	Border        lipgloss.Style
	FocusedBorder lipgloss.Style
	ScrollTrack   lipgloss.Style
	ScrollThumb   lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{
		// unfocused borders keep the terminal default foreground
		Border: lipgloss.NewStyle(),
	}
	if dark {
		s.FocusedBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		s.ScrollTrack = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
		s.ScrollThumb = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	} else {
		s.FocusedBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
		s.ScrollTrack = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
		s.ScrollThumb = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	}
	return s
}
