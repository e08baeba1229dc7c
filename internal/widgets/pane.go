package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a bordered box with the title set into the top border.
type Pane struct {
	Title    string
	Content  string
	Selected bool
	Focused  bool
	// Collapsed draws only the border rows, for minimized widgets.
	Collapsed bool
	// Accent colors the title when set.
	Accent  lipgloss.Color
	Palette Palette
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}
	h := max(height, 3)
	if p.Collapsed {
		h = 2
	}

	pal := p.Palette
	if pal.Name == "" {
		pal = Mocha
	}
	border := pal.Border
	if p.Selected {
		border = pal.Selected
	}
	if p.Focused {
		border = pal.Focused
	}
	titleColor := pal.Text
	if p.Accent != "" {
		titleColor = p.Accent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(pal.Text)

	titlePrefix := "  "
	if p.Selected {
		titlePrefix = "▶ "
	}
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := max(innerWidth-ansi.StringWidth(titleText), 0)
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")
	bottom := borderStyle.Render("╰") + borderStyle.Render(strings.Repeat("─", innerWidth)) + borderStyle.Render("╯")

	rows := make([]string, 0, h)
	rows = append(rows, top)
	contentLines := splitLines(p.Content)
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = contentStyle.Render(ansi.Truncate(line, contentWidth, ""))
		rows = append(rows, v+" "+padRightANSI(line, contentWidth)+" "+v)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
