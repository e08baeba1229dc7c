package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centers popup, wrapped in a rounded card, over base.
func RenderPopup(base, popup string, width, height int, pal Palette) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := NewCanvas(width, height)
	canvas.Place(base, 0, 0)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Selected).
		Padding(1, 2).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, line := range cardLines {
		cardWidth = max(cardWidth, ansi.StringWidth(line))
	}
	x := max((width-cardWidth)/2, 0)
	y := max((height-len(cardLines))/2, 0)
	canvas.Place(card, x, y)
	return canvas.String()
}
