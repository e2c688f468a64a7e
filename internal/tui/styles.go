// Package tui implements the interactive cache browser: a Bubble Tea
// program that lists cached entries and shows the tweets inside one.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	colorHeader = lipgloss.Color("63")
	colorFresh  = lipgloss.Color("42")
	colorStale  = lipgloss.Color("203")
	colorLabel  = lipgloss.Color("245")
	colorAuthor = lipgloss.Color("81")
)

// Shared styles.
var (
	headerStyle = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	freshStyle  = lipgloss.NewStyle().Foreground(colorFresh)
	staleStyle  = lipgloss.NewStyle().Foreground(colorStale)
	labelStyle  = lipgloss.NewStyle().Foreground(colorLabel)
	authorStyle = lipgloss.NewStyle().Foreground(colorAuthor).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorLabel).Italic(true)
)
