// Package tui provides the interactive terminal UI for Translingo.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - errors, accent
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - labels, selector
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - loading, highlights
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - confirmations
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Result line labels
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Input panel styles
var (
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	InputTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// Language selector styles
var (
	SelectorLabelStyle = lipgloss.NewStyle().
				Foreground(ColorLabel).
				Bold(true)

	SelectorValueStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true).
				Padding(0, 1)

	SelectorCodeStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// Result panel styles
var (
	ResultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2).
			Margin(1, 0)

	ResultLabelStyle = lipgloss.NewStyle().
				Foreground(ColorLabel).
				Bold(true).
				Width(13)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	ResultRomanStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Italic(true)
)

// Status styles
var (
	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Italic(true)

	ListeningStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorBg)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// Alert overlay styles
var (
	AlertBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(56)

	AlertTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	AlertHintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)
