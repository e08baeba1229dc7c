package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enerwatch/ewdash/internal/config"
	"github.com/enerwatch/ewdash/internal/dashboard"
)

// App is the dashboard terminal UI. Store commands run synchronously inside
// Update; the store subscription keeps the local state copy current.
type App struct {
	ctx       context.Context
	cfg       config.Config
	store     *dashboard.Store
	drop      *dashboard.DropTarget
	presenter *Presenter
	logger    *slog.Logger

	state       dashboard.State
	unsubscribe func()

	mode     appMode
	editing  bool
	focus    int
	forced   dashboard.Breakpoint
	width    int
	height   int
	status   string
	keys     keyMap
	help     help.Model
	showHelp bool

	// picker
	search       textinput.Model
	pickerCursor int

	// drag
	dragID dashboard.WidgetID
	dragX  int
	dragY  int
}

// Deps are the collaborators built in main.
type Deps struct {
	Store     *dashboard.Store
	Drop      *dashboard.DropTarget
	Presenter *Presenter
	Logger    *slog.Logger
}

type appMode string

const (
	modeGrid   appMode = "grid"
	modePicker appMode = "picker"
	modeDrag   appMode = "drag"
)

type errMsg struct{ error }

// shutdownMsg arrives when the app context is cancelled.
type shutdownMsg struct{}

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	if deps.Presenter == nil {
		deps.Presenter = NewPresenter()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Drop == nil {
		deps.Drop = dashboard.NewDropTarget(deps.Store, nil, deps.Logger)
	}
	search := textinput.New()
	search.Placeholder = "Widget ara..."
	search.Prompt = "🔍 "
	search.CharLimit = 64

	a := &App{
		ctx:       ctx,
		cfg:       cfg,
		store:     deps.Store,
		drop:      deps.Drop,
		presenter: deps.Presenter,
		logger:    deps.Logger,
		state:     deps.Store.State(),
		mode:      modeGrid,
		keys:      newKeyMap(),
		help:      help.New(),
		search:    search,
		width:     80,
		height:    24,
	}
	a.unsubscribe = deps.Store.Subscribe(func(st dashboard.State) {
		a.state = st
	})
	return a
}

// Close detaches the app from the store.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

func (a *App) Init() tea.Cmd {
	return func() tea.Msg {
		<-a.ctx.Done()
		return shutdownMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.search.Width = max(m.Width/2-8, 10)
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) && (a.mode != modePicker || m.String() == "ctrl+c") {
			a.Close()
			return a, tea.Quit
		}
		switch a.mode {
		case modePicker:
			return a.handlePickerKey(m)
		case modeDrag:
			return a.handleDragKey(m)
		default:
			return a.handleGridKey(m)
		}
	case shutdownMsg:
		a.Close()
		return a, tea.Quit
	case errMsg:
		a.status = "error: " + m.Error()
		a.logger.Error("tui", slog.String("error", m.Error()))
	}
	return a, nil
}

func (a *App) handleGridKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := a.items()
	switch {
	case key.Matches(m, a.keys.Help):
		a.showHelp = !a.showHelp
	case key.Matches(m, a.keys.Next):
		a.moveFocus(1, len(items))
	case key.Matches(m, a.keys.Prev):
		a.moveFocus(-1, len(items))
	case key.Matches(m, a.keys.Edit):
		a.editing = !a.editing
		a.status = ""
	case key.Matches(m, a.keys.Add):
		a.openPicker()
	case key.Matches(m, a.keys.Theme):
		a.store.SetTheme(a.state.Theme.Toggle())
		a.status = fmt.Sprintf("theme: %s", a.store.Theme())
	case key.Matches(m, a.keys.Reset):
		a.store.Reset()
		a.status = "layout reset"
	case key.Matches(m, a.keys.Breakpt):
		a.cycleBreakpoint()
	case key.Matches(m, a.keys.Minimize):
		if it, ok := a.focused(items); ok {
			a.store.ToggleMinimize(it.ID)
		}
	case key.Matches(m, a.keys.Remove):
		if !a.editing {
			a.status = "press e to edit before removing widgets"
			break
		}
		if it, ok := a.focused(items); ok {
			a.store.RemoveWidget(it.ID)
			a.focus = min(a.focus, max(len(a.items())-1, 0))
		}
	case a.editing:
		return a, a.handleEditKey(m, items)
	case key.Matches(m, a.keys.Up), key.Matches(m, a.keys.Left):
		a.moveFocus(-1, len(items))
	case key.Matches(m, a.keys.Down), key.Matches(m, a.keys.Right):
		a.moveFocus(1, len(items))
	}
	return a, nil
}

// handleEditKey moves or resizes the focused item and commits the whole
// visible bucket, the way a grid view reports a finished drag.
func (a *App) handleEditKey(m tea.KeyMsg, items []dashboard.LayoutItem) tea.Cmd {
	if a.focus >= len(items) {
		return nil
	}
	bp := a.breakpoint()
	cols := dashboard.Columns(bp)
	it := items[a.focus]
	minW, minH := 1, 1
	if it.MinW != nil {
		minW = max(*it.MinW, 1)
	}
	if it.MinH != nil {
		minH = max(*it.MinH, 1)
	}
	switch {
	case key.Matches(m, a.keys.Grow):
		it.W = min(it.W+1, cols-it.X)
	case key.Matches(m, a.keys.Shrink):
		it.W = max(it.W-1, minW)
	case key.Matches(m, a.keys.Taller):
		it.H++
	case key.Matches(m, a.keys.Shorter):
		it.H = max(it.H-1, minH)
	case key.Matches(m, a.keys.Up):
		it.Y = max(it.Y-1, 0)
	case key.Matches(m, a.keys.Down):
		it.Y++
	case key.Matches(m, a.keys.Left):
		it.X = max(it.X-1, 0)
	case key.Matches(m, a.keys.Right):
		it.X = min(it.X+1, max(cols-it.W, 0))
	default:
		return nil
	}
	if it == items[a.focus] {
		return nil
	}
	items[a.focus] = it
	if err := a.store.SetBreakpointLayout(bp, items); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return nil
}

func (a *App) handleDragKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := dashboard.Columns(a.breakpoint())
	switch {
	case key.Matches(m, a.keys.Cancel):
		a.mode = modeGrid
		a.dragID = ""
		a.status = "drag cancelled"
	case key.Matches(m, a.keys.Confirm):
		id := a.dragID
		a.mode = modeGrid
		a.dragID = ""
		if a.drop.Drop(string(id), a.dragX, a.dragY) {
			a.status = fmt.Sprintf("added %s", a.label(id))
			a.focus = max(len(a.items())-1, 0)
		} else {
			a.status = fmt.Sprintf("%s is already on the dashboard", a.label(id))
		}
	case key.Matches(m, a.keys.Up):
		a.dragY = max(a.dragY-1, 0)
	case key.Matches(m, a.keys.Down):
		a.dragY++
	case key.Matches(m, a.keys.Left):
		a.dragX = max(a.dragX-1, 0)
	case key.Matches(m, a.keys.Right):
		a.dragX = min(a.dragX+1, max(cols-1, 0))
	}
	return a, nil
}

func (a *App) View() string {
	switch a.mode {
	case modePicker:
		return a.renderPicker()
	default:
		return a.renderDashboard()
	}
}

// breakpoint picks the bucket for the current terminal width, unless one
// was forced with the breakpoint key.
func (a *App) breakpoint() dashboard.Breakpoint {
	if a.forced != "" {
		return a.forced
	}
	return dashboard.BreakpointFor(a.width * a.cfg.UI.CellPx)
}

func (a *App) cycleBreakpoint() {
	order := append([]dashboard.Breakpoint{""}, dashboard.Breakpoints()...)
	for i, bp := range order {
		if bp == a.forced {
			a.forced = order[(i+1)%len(order)]
			break
		}
	}
	if a.forced == "" {
		a.status = fmt.Sprintf("breakpoint: auto (%s)", a.breakpoint())
	} else {
		a.status = fmt.Sprintf("breakpoint: %s", a.forced)
	}
	a.focus = 0
}

func (a *App) items() []dashboard.LayoutItem {
	return a.state.Resolved(a.breakpoint())
}

func (a *App) focused(items []dashboard.LayoutItem) (dashboard.LayoutItem, bool) {
	if a.focus < 0 || a.focus >= len(items) {
		return dashboard.LayoutItem{}, false
	}
	return items[a.focus], true
}

func (a *App) moveFocus(delta, n int) {
	if n == 0 {
		a.focus = 0
		return
	}
	a.focus = ((a.focus+delta)%n + n) % n
}

func (a *App) label(id dashboard.WidgetID) string {
	if e, ok := dashboard.Find(id); ok {
		return e.Label
	}
	return string(id)
}
