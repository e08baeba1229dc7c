package dashboard

import (
	"errors"
	"slices"
)

// Breakpoint names one responsive width class.
type Breakpoint string

const (
	BreakpointLG Breakpoint = "lg"
	BreakpointMD Breakpoint = "md"
	BreakpointSM Breakpoint = "sm"
)

// ErrUnknownBreakpoint is returned for a breakpoint outside lg/md/sm.
var ErrUnknownBreakpoint = errors.New("unknown breakpoint")

// Breakpoints lists every breakpoint from widest to narrowest.
func Breakpoints() []Breakpoint {
	return []Breakpoint{BreakpointLG, BreakpointMD, BreakpointSM}
}

// Columns returns the grid column count for bp, or 0 if bp is unknown.
func Columns(bp Breakpoint) int {
	switch bp {
	case BreakpointLG:
		return 12
	case BreakpointMD:
		return 8
	case BreakpointSM:
		return 1
	default:
		return 0
	}
}

// MinWidth returns the viewport width in pixels at which bp takes effect.
func MinWidth(bp Breakpoint) int {
	switch bp {
	case BreakpointLG:
		return 1280
	case BreakpointMD:
		return 1024
	case BreakpointSM:
		return 640
	default:
		return 0
	}
}

// BreakpointFor picks the widest breakpoint whose minimum width fits px.
// Anything narrower than sm still uses sm.
func BreakpointFor(px int) Breakpoint {
	for _, bp := range Breakpoints() {
		if px >= MinWidth(bp) {
			return bp
		}
	}
	return BreakpointSM
}

func validBreakpoint(bp Breakpoint) bool {
	return Columns(bp) > 0
}

// LayoutItem places one widget inside one breakpoint grid. X and W are in
// columns, Y and H in rows.
type LayoutItem struct {
	ID   WidgetID `json:"i"`
	X    int      `json:"x"`
	Y    int      `json:"y"`
	W    int      `json:"w"`
	H    int      `json:"h"`
	MinW *int     `json:"minW,omitempty"`
	MinH *int     `json:"minH,omitempty"`
}

// Layouts holds the three breakpoint buckets.
type Layouts struct {
	LG []LayoutItem `json:"lg"`
	MD []LayoutItem `json:"md"`
	SM []LayoutItem `json:"sm"`
}

// EmptyLayouts returns layouts with three empty, non-nil buckets.
func EmptyLayouts() Layouts {
	return Layouts{LG: []LayoutItem{}, MD: []LayoutItem{}, SM: []LayoutItem{}}
}

// Bucket returns the items for bp.
func (l Layouts) Bucket(bp Breakpoint) []LayoutItem {
	switch bp {
	case BreakpointLG:
		return l.LG
	case BreakpointMD:
		return l.MD
	case BreakpointSM:
		return l.SM
	default:
		return nil
	}
}

// WithBucket returns a copy of l with bp's bucket replaced.
func (l Layouts) WithBucket(bp Breakpoint, items []LayoutItem) Layouts {
	next := l.Clone()
	items = cloneItems(items)
	switch bp {
	case BreakpointLG:
		next.LG = items
	case BreakpointMD:
		next.MD = items
	case BreakpointSM:
		next.SM = items
	}
	return next
}

// Clone deep-copies every bucket. Nil buckets become empty ones.
func (l Layouts) Clone() Layouts {
	return Layouts{LG: cloneItems(l.LG), MD: cloneItems(l.MD), SM: cloneItems(l.SM)}
}

func cloneItems(items []LayoutItem) []LayoutItem {
	out := make([]LayoutItem, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out
}

func (it LayoutItem) clone() LayoutItem {
	if it.MinW != nil {
		v := *it.MinW
		it.MinW = &v
	}
	if it.MinH != nil {
		v := *it.MinH
		it.MinH = &v
	}
	return it
}

// Fits reports whether the item stays inside a grid with cols columns.
func (it LayoutItem) Fits(cols int) bool {
	return it.X >= 0 && it.Y >= 0 && it.W > 0 && it.H > 0 && it.X+it.W <= cols
}

// Overlaps reports whether two items share at least one cell.
func (it LayoutItem) Overlaps(other LayoutItem) bool {
	return it.X < other.X+other.W && other.X < it.X+it.W &&
		it.Y < other.Y+other.H && other.Y < it.Y+it.H
}

func indexOf(items []LayoutItem, id WidgetID) int {
	return slices.IndexFunc(items, func(it LayoutItem) bool { return it.ID == id })
}
