package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// title is the decorative banner text.
const title = "Translingo"

// Banner geometry when block-art rendering is available.
const (
	letterCols = 6
	letterRows = 3
)

// renderBanner draws the title with per-letter hue rotation and a gentle
// bob driven by the hue tick. Falls back to plain styled letters when no
// system font could be loaded.
func (m Model) renderBanner() string {
	letters := []rune(title)
	cells := make([]string, len(letters))

	useBlocks := m.banner != nil && m.banner.Available() && m.width >= len(letters)*letterCols+8

	for i, letter := range letters {
		style := lipgloss.NewStyle().Foreground(letterColor(m.hue, i)).Bold(true)

		var art string
		if useBlocks {
			art = m.banner.Letter(letter, letterCols, letterRows)
		}
		if art == "" {
			art = string(letter)
		}

		cells[i] = bobCell(style.Render(art), letterBob(m.hue, i))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width - 4).Align(lipgloss.Center).Render(row)
	}
	return row
}

// letterColor spreads the hue wheel across the letters and rotates it with
// the global hue phase.
func letterColor(hue float64, index int) lipgloss.Color {
	h := math.Mod(hue+float64(index)*24, 360)
	return lipgloss.Color(colorful.Hsv(h, 0.55, 0.95).Hex())
}

// letterBob is the vertical offset (0 or 1 rows) for a letter, phased so a
// wave travels across the title as the hue advances.
func letterBob(hue float64, index int) int {
	phase := int(hue/45) + index
	if phase%4 < 2 {
		return 0
	}
	return 1
}

// bobCell pads a rendered letter on top by offset rows so adjacent letters
// sit at different heights.
func bobCell(art string, offset int) string {
	if offset == 0 {
		return art + "\n"
	}
	return strings.Repeat("\n", offset) + art
}
