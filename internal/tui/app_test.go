package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/enerwatch/ewdash/internal/config"
	"github.com/enerwatch/ewdash/internal/dashboard"
)

func newTestApp(t *testing.T, width int) (*App, *dashboard.Store) {
	t.Helper()
	p := NewPresenter()
	empty := dashboard.Snapshot{Layouts: dashboard.EmptyLayouts(), Active: []dashboard.WidgetID{}, Minimized: map[dashboard.WidgetID]bool{}}
	store := dashboard.New(dashboard.WithSnapshot(empty), dashboard.WithPresenter(p))
	app := New(context.Background(), config.Config{UI: config.UIConfig{CellPx: 16}}, Deps{Store: store, Presenter: p})
	t.Cleanup(app.Close)
	app.Update(tea.WindowSizeMsg{Width: width, Height: 40})
	return app, store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(app *App, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = app.Update(m)
	}
	return cmd
}

func typeText(app *App, s string) {
	for _, r := range s {
		press(app, runes(string(r)))
	}
}

func TestBreakpointFollowsWidth(t *testing.T) {
	tests := []struct {
		width int
		want  dashboard.Breakpoint
	}{
		{120, dashboard.BreakpointLG},
		{80, dashboard.BreakpointLG},
		{70, dashboard.BreakpointMD},
		{50, dashboard.BreakpointSM},
		{20, dashboard.BreakpointSM},
	}
	for _, tt := range tests {
		app, _ := newTestApp(t, tt.width)
		require.Equal(t, tt.want, app.breakpoint(), "width %d", tt.width)
	}

	app, _ := newTestApp(t, 120)
	press(app, runes("b"))
	require.Equal(t, dashboard.BreakpointLG, app.breakpoint())
	press(app, runes("b"))
	require.Equal(t, dashboard.BreakpointMD, app.breakpoint())
	press(app, runes("b"), runes("b"))
	require.Equal(t, dashboard.Breakpoint(""), app.forced)
}

func TestPickerCommitsPendingSelection(t *testing.T) {
	app, store := newTestApp(t, 120)

	press(app, runes("a"))
	require.Equal(t, modePicker, app.mode)

	press(app,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	require.Equal(t, []dashboard.WidgetID{dashboard.WidgetTotalConsumption, dashboard.WidgetNaturalGasTEP}, store.Pending())

	press(app, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeGrid, app.mode)
	require.Equal(t, []dashboard.WidgetID{dashboard.WidgetTotalConsumption, dashboard.WidgetNaturalGasTEP}, store.ActiveWidgets())
	require.Empty(t, store.Pending())
	require.Len(t, store.Layout(dashboard.BreakpointMD), 2)
}

func TestPickerSearchAddsHighlighted(t *testing.T) {
	app, store := newTestApp(t, 120)

	press(app, runes("a"))
	typeText(app, "kapasitif")
	require.Equal(t, "kapasitif", app.search.Value())
	entries := app.pickerEntries()
	require.NotEmpty(t, entries)
	require.Equal(t, dashboard.WidgetCapacitiveLoad, entries[0].ID)

	press(app, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []dashboard.WidgetID{dashboard.WidgetCapacitiveLoad}, store.ActiveWidgets())

	// active widgets are no longer offered
	press(app, runes("a"))
	for _, e := range app.pickerEntries() {
		require.NotEqual(t, dashboard.WidgetCapacitiveLoad, e.ID)
	}
	press(app, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, modeGrid, app.mode)
}

func TestPickerResetAndRemoveAll(t *testing.T) {
	app, store := newTestApp(t, 120)
	store.InsertWidgets(dashboard.WidgetCapacitiveLoad)

	press(app, runes("a"), tea.KeyMsg{Type: tea.KeyTab})
	require.Len(t, store.Pending(), 1)
	press(app, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Empty(t, store.Pending())

	press(app, tea.KeyMsg{Type: tea.KeyCtrlX})
	require.Empty(t, store.ActiveWidgets())
	require.Equal(t, modePicker, app.mode)
}

func TestEditModeMovesAndResizes(t *testing.T) {
	app, store := newTestApp(t, 120)
	store.InsertWidgets(dashboard.WidgetCapacitiveLoad)

	press(app, tea.KeyMsg{Type: tea.KeyRight})
	require.Zero(t, store.Layout(dashboard.BreakpointLG)[0].X, "arrows only move focus outside edit mode")

	press(app, runes("e"), tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, store.Layout(dashboard.BreakpointLG)[0].X)

	press(app, runes("L"), runes("J"))
	it := store.Layout(dashboard.BreakpointLG)[0]
	require.Equal(t, 3, it.W)
	require.Equal(t, 6, it.H)

	press(app, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	require.Zero(t, store.Layout(dashboard.BreakpointLG)[0].X)
	require.Equal(t, dashboard.WidgetCapacitiveLoad, store.Layout(dashboard.BreakpointMD)[0].ID, "other buckets untouched")
	require.Equal(t, 2, store.Layout(dashboard.BreakpointMD)[0].W)
}

func TestRemoveNeedsEditMode(t *testing.T) {
	app, store := newTestApp(t, 120)
	store.InsertWidgets(dashboard.WidgetCapacitiveLoad, dashboard.WidgetMultiSeriesChart)

	press(app, runes("x"))
	require.Len(t, store.ActiveWidgets(), 2)

	press(app, runes("e"), tea.KeyMsg{Type: tea.KeyTab}, runes("x"))
	require.Equal(t, []dashboard.WidgetID{dashboard.WidgetCapacitiveLoad}, store.ActiveWidgets())
	require.Zero(t, app.focus)
}

func TestMinimizeThemeAndReset(t *testing.T) {
	app, store := newTestApp(t, 120)
	store.InsertWidgets(dashboard.WidgetCapacitiveLoad)

	press(app, runes("m"))
	require.True(t, store.Minimized(dashboard.WidgetCapacitiveLoad))

	press(app, runes("t"))
	require.Equal(t, dashboard.ThemeDark, store.Theme())
	require.Equal(t, "mocha", app.presenter.Palette().Name)

	press(app, runes("R"))
	require.Equal(t, dashboard.ThemeLight, store.Theme())
	require.Equal(t, "latte", app.presenter.Palette().Name)
	require.False(t, store.Minimized(dashboard.WidgetCapacitiveLoad))
	require.Equal(t, []dashboard.WidgetID{dashboard.WidgetCapacitiveLoad}, store.ActiveWidgets())
}

func TestDragFromPickerDropsOnGrid(t *testing.T) {
	app, store := newTestApp(t, 120)

	press(app, runes("a"))
	typeText(app, "buhar")
	press(app, tea.KeyMsg{Type: tea.KeyCtrlG})
	require.Equal(t, modeDrag, app.mode)
	require.Equal(t, dashboard.WidgetSteamConsumption, app.dragID)

	press(app,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	view := ansi.Strip(app.View())
	require.Contains(t, view, "⇣")

	press(app, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeGrid, app.mode)
	require.Equal(t, []dashboard.LayoutItem{{ID: dashboard.WidgetSteamConsumption, X: 3, Y: 1, W: 2, H: 4}}, store.Layout(dashboard.BreakpointLG))
	require.Equal(t, 0, store.Layout(dashboard.BreakpointSM)[0].X)
}

func TestViewRendersPanes(t *testing.T) {
	app, store := newTestApp(t, 120)
	view := ansi.Strip(app.View())
	require.Contains(t, view, "Enerji Paneli")
	require.Contains(t, view, "Henüz widget yok")

	store.InsertWidgets(dashboard.WidgetCapacitiveLoad)
	view = ansi.Strip(app.View())
	require.Contains(t, view, "Kapasitif Yük")
	require.Contains(t, view, "0%")
	require.LessOrEqual(t, len(strings.Split(view, "\n")), 40)

	press(app, runes("a"))
	require.Contains(t, ansi.Strip(app.View()), "Widget Ekle")
}

func TestQuitDetachesFromStore(t *testing.T) {
	app, store := newTestApp(t, 120)
	cmd := press(app, runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	store.InsertWidgets(dashboard.WidgetCapacitiveLoad)
	require.Empty(t, app.state.Active)
}
