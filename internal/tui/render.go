package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/enerwatch/ewdash/internal/dashboard"
	"github.com/enerwatch/ewdash/internal/widgets"
)

func (a *App) renderDashboard() string {
	pal := a.presenter.Palette()
	bp := a.breakpoint()
	header := a.renderHeader(pal, bp)
	footer := a.renderFooter()
	height := max(a.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	return lipgloss.JoinVertical(lipgloss.Left, header, a.renderGrid(pal, bp, height), footer)
}

func (a *App) renderHeader(pal widgets.Palette, bp dashboard.Breakpoint) string {
	title := lipgloss.NewStyle().Foreground(pal.Selected).Bold(true).Render("Enerji Paneli")
	meta := []string{
		fmt.Sprintf("%s · %d sütun", bp, dashboard.Columns(bp)),
		fmt.Sprintf("%d widget", len(a.state.Active)),
		string(a.state.Theme),
	}
	if a.editing {
		meta = append(meta, lipgloss.NewStyle().Foreground(pal.Peach).Render("düzenleme"))
	}
	if a.mode == modeDrag {
		meta = append(meta, lipgloss.NewStyle().Foreground(pal.Green).Render("sürükle: "+a.label(a.dragID)))
	}
	subtle := lipgloss.NewStyle().Foreground(pal.Subtle)
	line := title + "  " + subtle.Render(strings.Join(meta, " │ "))
	status := subtle.Render(a.status)
	return line + "\n" + status
}

func (a *App) renderFooter() string {
	var keys help.KeyMap = gridKeys{keyMap: a.keys, editing: a.editing}
	if a.mode == modeDrag {
		keys = dragKeys{keyMap: a.keys}
	}
	if a.showHelp {
		return a.help.FullHelpView(keys.FullHelp())
	}
	return a.help.ShortHelpView(keys.ShortHelp())
}

func (a *App) renderGrid(pal widgets.Palette, bp dashboard.Breakpoint, height int) string {
	cols := dashboard.Columns(bp)
	grid := widgets.Grid{Cols: cols, Width: a.width, RowLines: 1}
	items := a.items()
	canvas := widgets.NewCanvas(a.width, height)

	if len(items) == 0 && a.mode != modeDrag {
		msg := lipgloss.NewStyle().Foreground(pal.Subtle).Render("Henüz widget yok. Eklemek için a tuşuna basın.")
		canvas.Place(lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center, msg), 0, 0)
		return canvas.String()
	}

	offset := 0
	if it, ok := a.focused(items); ok && a.mode == modeGrid {
		offset = scrollOffset(grid, it, height)
	}
	ghost, dragging := a.ghost(cols)
	if dragging {
		offset = scrollOffset(grid, ghost, height)
	}

	for i, it := range items {
		e, _ := dashboard.Find(it.ID)
		left, top, w, h := grid.Rect(it.X, it.Y, it.W, it.H)
		isFocus := i == a.focus && a.mode == modeGrid
		content := e.Preview
		if a.editing {
			content += fmt.Sprintf("\n%d,%d %d×%d", it.X, it.Y, it.W, it.H)
		}
		pane := widgets.Pane{
			Title:     e.Label,
			Content:   content,
			Focused:   isFocus && !a.editing,
			Selected:  isFocus && a.editing,
			Collapsed: a.state.IsMinimized(it.ID),
			Accent:    kindAccent(pal, e.Kind),
			Palette:   pal,
		}
		canvas.Place(pane.Render(w, h), left, top-offset)
	}

	if dragging {
		left, top, w, h := grid.Rect(ghost.X, ghost.Y, ghost.W, ghost.H)
		pane := widgets.Pane{
			Title:   "⇣ " + a.label(ghost.ID),
			Content: fmt.Sprintf("%d,%d", ghost.X, ghost.Y),
			Focused: true,
			Palette: pal,
			Accent:  pal.Green,
		}
		canvas.Place(pane.Render(w, h), left, top-offset)
	}
	return canvas.String()
}

// ghost is the drop preview while dragging, sized the way the drop will be
// stored for the current bucket.
func (a *App) ghost(cols int) (dashboard.LayoutItem, bool) {
	if a.mode != modeDrag || cols <= 0 {
		return dashboard.LayoutItem{}, false
	}
	w := min(dashboard.DropSize.W, cols)
	x := min(a.dragX, cols-w)
	return dashboard.LayoutItem{ID: a.dragID, X: x, Y: a.dragY, W: w, H: dashboard.DropSize.H}, true
}

func scrollOffset(grid widgets.Grid, it dashboard.LayoutItem, height int) int {
	_, top, _, h := grid.Rect(it.X, it.Y, it.W, it.H)
	if bottom := top + h; bottom > height {
		return min(bottom-height, top)
	}
	return 0
}
