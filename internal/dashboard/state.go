package dashboard

import (
	"maps"
	"slices"
)

// Theme is the global presentation mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a config or UI string to a Theme, defaulting to light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite mode.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// State is everything the dashboard engine owns. Values handed out by the
// Store are copies; mutate the dashboard only through Store commands.
type State struct {
	Layouts   Layouts
	Active    []WidgetID
	Minimized map[WidgetID]bool
	Pending   []WidgetID
	Theme     Theme
}

// Snapshot is the persisted subset of State.
type Snapshot struct {
	Layouts   Layouts
	Active    []WidgetID
	Minimized map[WidgetID]bool
}

// DefaultSnapshot is what a first run (or an unreadable record) starts from:
// empty layouts, the first two catalog widgets active, nothing minimized.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Layouts:   EmptyLayouts(),
		Active:    defaultActive(),
		Minimized: defaultMinimized(),
	}
}

func defaultActive() []WidgetID {
	return WidgetIDs()[:2]
}

func defaultMinimized() map[WidgetID]bool {
	m := make(map[WidgetID]bool, len(catalog))
	for _, e := range catalog {
		m[e.ID] = false
	}
	return m
}

// NewState builds a State from a persisted snapshot with the light theme.
func NewState(s Snapshot) State {
	return State{
		Layouts:   s.Layouts.Clone(),
		Active:    cloneIDs(s.Active),
		Minimized: cloneFlags(s.Minimized),
		Pending:   []WidgetID{},
		Theme:     ThemeLight,
	}
}

// Snapshot extracts the persisted subset.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Layouts:   s.Layouts.Clone(),
		Active:    cloneIDs(s.Active),
		Minimized: cloneFlags(s.Minimized),
	}
}

// Clone deep-copies the state.
func (s State) Clone() State {
	return State{
		Layouts:   s.Layouts.Clone(),
		Active:    cloneIDs(s.Active),
		Minimized: cloneFlags(s.Minimized),
		Pending:   cloneIDs(s.Pending),
		Theme:     s.Theme,
	}
}

// IsActive reports whether id is on the dashboard.
func (s State) IsActive(id WidgetID) bool {
	return slices.Contains(s.Active, id)
}

// IsMinimized reports the minimized flag for id, false when unset.
func (s State) IsMinimized(id WidgetID) bool {
	return s.Minimized[id]
}

func cloneIDs(ids []WidgetID) []WidgetID {
	out := make([]WidgetID, len(ids))
	copy(out, ids)
	return out
}

func cloneFlags(m map[WidgetID]bool) map[WidgetID]bool {
	out := make(map[WidgetID]bool, len(m))
	maps.Copy(out, m)
	return out
}

// dedupe keeps the first occurrence of every id.
func dedupe(ids []WidgetID) []WidgetID {
	seen := make(map[WidgetID]struct{}, len(ids))
	out := make([]WidgetID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
