package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/enerwatch/ewdash/internal/dashboard"
	"github.com/enerwatch/ewdash/internal/widgets"
)

func (a *App) openPicker() {
	a.mode = modePicker
	a.pickerCursor = 0
	a.search.SetValue("")
	a.search.Focus()
}

func (a *App) closePicker() {
	a.mode = modeGrid
	a.search.Blur()
}

// pickerEntries lists widgets not yet on the dashboard that match the
// search box.
func (a *App) pickerEntries() []dashboard.CatalogEntry {
	return dashboard.Search(dashboard.Available(a.state.Active), a.search.Value())
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := a.pickerEntries()
	current, hasCurrent := dashboard.CatalogEntry{}, a.pickerCursor < len(entries)
	if hasCurrent {
		current = entries[a.pickerCursor]
	}

	switch {
	case key.Matches(m, a.keys.Cancel):
		a.closePicker()
	case key.Matches(m, a.keys.PickUp):
		if a.pickerCursor > 0 {
			a.pickerCursor--
		}
	case key.Matches(m, a.keys.PickDown):
		if a.pickerCursor < len(entries)-1 {
			a.pickerCursor++
		}
	case key.Matches(m, a.keys.Toggle):
		if hasCurrent {
			a.store.TogglePending(current.ID)
		}
	case key.Matches(m, a.keys.ResetSel):
		a.store.ResetPending()
		a.status = "selection cleared"
	case key.Matches(m, a.keys.RemoveAll):
		a.store.RemoveAll()
		a.focus = 0
		a.status = "all widgets removed"
	case key.Matches(m, a.keys.Grab):
		if hasCurrent {
			a.closePicker()
			a.mode = modeDrag
			a.dragID = current.ID
			a.dragX, a.dragY = 0, 0
			a.status = "move with arrows, enter to drop"
		}
	case key.Matches(m, a.keys.Confirm):
		a.commitPicker(current, hasCurrent)
	default:
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(m)
		a.pickerCursor = min(a.pickerCursor, max(len(a.pickerEntries())-1, 0))
		return a, cmd
	}
	return a, nil
}

// commitPicker adds the pending selection, or the highlighted entry when
// nothing is selected, and closes the picker.
func (a *App) commitPicker(current dashboard.CatalogEntry, hasCurrent bool) {
	var inserted []dashboard.WidgetID
	switch {
	case len(a.state.Pending) > 0:
		inserted = a.store.CommitPending()
	case hasCurrent:
		inserted = a.store.InsertWidgets(current.ID)
	default:
		a.status = "nothing to add"
		return
	}
	a.closePicker()
	if len(inserted) == 0 {
		a.status = "nothing added"
		return
	}
	a.focus = max(len(a.items())-1, 0)
	a.status = fmt.Sprintf("added %d widget(s)", len(inserted))
}

func (a *App) renderPicker() string {
	pal := a.presenter.Palette()
	base := a.renderDashboard()

	title := lipgloss.NewStyle().Foreground(pal.Selected).Bold(true).Render("Widget Ekle")
	subtle := lipgloss.NewStyle().Foreground(pal.Subtle)
	cursorStyle := lipgloss.NewStyle().Foreground(pal.Focused).Bold(true)

	entries := a.pickerEntries()
	lines := []string{title, "", a.search.View(), ""}
	if len(entries) == 0 {
		lines = append(lines, subtle.Render("Eşleşen widget yok"))
	}
	for i, e := range entries {
		check := "[ ]"
		if slices.Contains(a.state.Pending, e.ID) {
			check = "[x]"
		}
		prefix := "  "
		label := e.Label
		if i == a.pickerCursor {
			prefix = cursorStyle.Render("› ")
			label = cursorStyle.Render(label)
		}
		accent := lipgloss.NewStyle().Foreground(kindAccent(pal, e.Kind)).Render(check)
		lines = append(lines, fmt.Sprintf("%s%s %s  %s", prefix, accent, label, subtle.Render(e.Preview)))
	}
	lines = append(lines, "",
		subtle.Render(fmt.Sprintf("%d seçili · %d aktif", len(a.state.Pending), len(a.state.Active))),
		a.help.ShortHelpView(pickerKeys{keyMap: a.keys}.ShortHelp()),
	)
	return widgets.RenderPopup(base, strings.Join(lines, "\n"), a.width, a.height, pal)
}
