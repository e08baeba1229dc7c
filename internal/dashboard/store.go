package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Presenter reflects the theme onto whatever renders the dashboard. It is
// called by SetTheme and Reset with the store lock held and must not call
// back into the Store.
type Presenter interface {
	ApplyPresentationMode(t Theme)
}

// Recorder observes store activity, typically for metrics.
type Recorder interface {
	CommandApplied(command string)
	PersistFinished(err error)
	ActiveWidgets(n int)
}

type nopPresenter struct{}

func (nopPresenter) ApplyPresentationMode(Theme) {}

type nopRecorder struct{}

func (nopRecorder) CommandApplied(string) {}
func (nopRecorder) PersistFinished(error) {}
func (nopRecorder) ActiveWidgets(int)     {}

// Option configures a Store.
type Option func(*Store)

// WithSnapshot seeds the store from restored data instead of the defaults.
func WithSnapshot(s Snapshot) Option {
	return func(st *Store) { st.state = NewState(s) }
}

// WithPersister enables write-through persistence.
func WithPersister(p Persister) Option {
	return func(st *Store) { st.persister = p }
}

// WithPresenter sets the theme side-effect target.
func WithPresenter(p Presenter) Option {
	return func(st *Store) {
		if p != nil {
			st.presenter = p
		}
	}
}

// WithRecorder sets the activity recorder.
func WithRecorder(r Recorder) Option {
	return func(st *Store) {
		if r != nil {
			st.recorder = r
		}
	}
}

// WithLogger sets the logger used for persistence failures and no-ops.
func WithLogger(l *slog.Logger) Option {
	return func(st *Store) {
		if l != nil {
			st.logger = l
		}
	}
}

// WithContext sets the context passed to the persister on every write.
func WithContext(ctx context.Context) Option {
	return func(st *Store) { st.ctx = ctx }
}

// Store owns the dashboard state. Every command runs to completion,
// including its persistence write and presentation side effect, under one
// lock; listeners are notified afterwards, outside it. Notifications follow
// command order only for callers that issue commands from one goroutine.
type Store struct {
	ctx       context.Context
	mu        sync.Mutex
	state     State
	persister Persister
	presenter Presenter
	recorder  Recorder
	logger    *slog.Logger

	subsMu sync.Mutex
	subs   []subscription
}

type subscription struct {
	id string
	fn func(State)
}

// New builds a Store. Without WithSnapshot it starts from DefaultSnapshot.
func New(opts ...Option) *Store {
	s := &Store{
		ctx:       context.Background(),
		state:     NewState(DefaultSnapshot()),
		presenter: nopPresenter{},
		recorder:  nopRecorder{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recorder.ActiveWidgets(len(s.state.Active))
	return s
}

// --- selectors ---

// State returns a copy of the whole state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Layouts returns a copy of all three buckets.
func (s *Store) Layouts() Layouts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Layouts.Clone()
}

// Layout returns a copy of one bucket exactly as stored, orphans included.
func (s *Store) Layout(bp Breakpoint) []LayoutItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.state.Layouts.Bucket(bp))
}

// ResolvedLayout returns the bucket a renderer should draw for bp.
func (s *Store) ResolvedLayout(bp Breakpoint) []LayoutItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Resolved(bp)
}

// ActiveWidgets returns the active widgets in display order.
func (s *Store) ActiveWidgets() []WidgetID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneIDs(s.state.Active)
}

// IsActive reports whether id is on the dashboard.
func (s *Store) IsActive(id WidgetID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsActive(id)
}

// Minimized reports whether id is collapsed to its header.
func (s *Store) Minimized(id WidgetID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsMinimized(id)
}

// Pending returns the picker's uncommitted selection.
func (s *Store) Pending() []WidgetID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneIDs(s.state.Pending)
}

// Theme returns the current presentation mode.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Theme
}

// --- subscriptions ---

// Subscribe registers fn to run after every state-changing command. The
// returned func removes it and may be called more than once.
func (s *Store) Subscribe(fn func(State)) func() {
	id := uuid.NewString()
	s.subsMu.Lock()
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.subsMu.Unlock()
	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool { return sub.id == id })
	}
}

// Select runs fn whenever sel yields a value different from the previous
// one. Values are compared with reflect.DeepEqual.
func Select[T any](s *Store, sel func(State) T, fn func(T)) func() {
	var mu sync.Mutex
	last := sel(s.State())
	return s.Subscribe(func(st State) {
		v := sel(st)
		mu.Lock()
		changed := !reflect.DeepEqual(v, last)
		if changed {
			last = v
		}
		mu.Unlock()
		if changed {
			fn(v)
		}
	})
}

func (s *Store) notify(st State) {
	s.subsMu.Lock()
	subs := slices.Clone(s.subs)
	s.subsMu.Unlock()
	for _, sub := range subs {
		sub.fn(st.Clone())
	}
}

// --- commands ---

// mutation edits next in place and reports whether anything changed and
// whether the change touches persisted fields.
type mutation func(next *State) (changed, persist bool)

func (s *Store) apply(command string, m mutation) bool {
	s.mu.Lock()
	next := s.state.Clone()
	changed, persist := m(&next)
	if !changed {
		s.mu.Unlock()
		s.logger.Debug("dashboard command had no effect", slog.String("command", command))
		return false
	}
	s.state = next
	if persist {
		s.save(command, next.Snapshot())
	}
	out := next.Clone()
	s.mu.Unlock()

	s.recorder.CommandApplied(command)
	s.recorder.ActiveWidgets(len(out.Active))
	s.notify(out)
	return true
}

// save must be called with s.mu held.
func (s *Store) save(command string, snap Snapshot) {
	if s.persister == nil {
		return
	}
	err := s.persister.Save(s.ctx, snap)
	s.recorder.PersistFinished(err)
	if err != nil {
		s.logger.Error("persist dashboard",
			slog.String("command", command),
			slog.String("error", err.Error()))
	}
}

// SetBreakpointLayout replaces the bucket for bp with items as given. The
// grid view is trusted to send non-overlapping geometry.
func (s *Store) SetBreakpointLayout(bp Breakpoint, items []LayoutItem) error {
	if !validBreakpoint(bp) {
		return fmt.Errorf("set layout %q: %w", bp, ErrUnknownBreakpoint)
	}
	s.apply("set_layout_"+string(bp), func(next *State) (bool, bool) {
		next.Layouts = next.Layouts.WithBucket(bp, items)
		return true, true
	})
	return nil
}

// SetActiveWidgets replaces the active set. Duplicates and unknown ids are
// dropped. Layout items of widgets no longer active are left in place.
func (s *Store) SetActiveWidgets(ids []WidgetID) {
	s.apply("set_active", func(next *State) (bool, bool) {
		next.Active = knownOnly(dedupe(ids))
		return true, true
	})
}

// SetPending replaces the picker selection.
func (s *Store) SetPending(ids []WidgetID) {
	s.apply("set_pending", func(next *State) (bool, bool) {
		next.Pending = knownOnly(dedupe(ids))
		return true, false
	})
}

// TogglePending adds id to the picker selection or removes it if present.
func (s *Store) TogglePending(id WidgetID) {
	if !Known(id) {
		return
	}
	s.apply("toggle_pending", func(next *State) (bool, bool) {
		if i := slices.Index(next.Pending, id); i >= 0 {
			next.Pending = slices.Delete(next.Pending, i, i+1)
		} else {
			next.Pending = append(next.Pending, id)
		}
		return true, false
	})
}

// ResetPending clears the picker selection.
func (s *Store) ResetPending() {
	s.apply("reset_pending", func(next *State) (bool, bool) {
		if len(next.Pending) == 0 {
			return false, false
		}
		next.Pending = []WidgetID{}
		return true, false
	})
}

// CommitPending inserts the picker selection and clears it.
func (s *Store) CommitPending() []WidgetID {
	var inserted []WidgetID
	s.apply("commit_pending", func(next *State) (bool, bool) {
		inserted = next.insert(next.Pending)
		hadPending := len(next.Pending) > 0
		next.Pending = []WidgetID{}
		return hadPending || len(inserted) > 0, len(inserted) > 0
	})
	return inserted
}

// InsertWidgets adds ids that are not yet active, in order, and packs a
// layout item for each of them into every bucket. An item left behind by an
// earlier removal of the same id is replaced, so an id is never in a bucket
// twice. It returns the ids that
// were actually inserted; when that is empty nothing changed.
func (s *Store) InsertWidgets(ids ...WidgetID) []WidgetID {
	var inserted []WidgetID
	s.apply("insert", func(next *State) (bool, bool) {
		inserted = next.insert(ids)
		return len(inserted) > 0, len(inserted) > 0
	})
	return inserted
}

func (st *State) insert(ids []WidgetID) []WidgetID {
	var fresh []WidgetID
	for _, id := range dedupe(ids) {
		if !Known(id) || st.IsActive(id) {
			continue
		}
		fresh = append(fresh, id)
	}
	if len(fresh) == 0 {
		return nil
	}
	st.Active = append(st.Active, fresh...)
	for _, bp := range Breakpoints() {
		bucket := st.Layouts.Bucket(bp)
		// slots count from the bucket as it was, leftovers included
		added := Pack(bucket, fresh, Columns(bp), InsertSize)
		kept := slices.DeleteFunc(cloneItems(bucket), func(it LayoutItem) bool {
			return slices.Contains(fresh, it.ID)
		})
		st.Layouts = st.Layouts.WithBucket(bp, append(kept, added...))
	}
	return fresh
}

// RemoveWidget takes id off the dashboard. Its layout items stay behind.
func (s *Store) RemoveWidget(id WidgetID) {
	s.apply("remove", func(next *State) (bool, bool) {
		i := slices.Index(next.Active, id)
		if i < 0 {
			return false, false
		}
		next.Active = slices.Delete(next.Active, i, i+1)
		return true, true
	})
}

// RemoveAll clears the active set and the picker selection.
func (s *Store) RemoveAll() {
	s.apply("remove_all", func(next *State) (bool, bool) {
		next.Active = []WidgetID{}
		next.Pending = []WidgetID{}
		return true, true
	})
}

// ToggleMinimize flips the minimized flag of id.
func (s *Store) ToggleMinimize(id WidgetID) {
	if !Known(id) {
		return
	}
	s.apply("toggle_minimize", func(next *State) (bool, bool) {
		next.Minimized[id] = !next.Minimized[id]
		return true, true
	})
}

// SetTheme records the mode and applies it to the presenter.
func (s *Store) SetTheme(t Theme) {
	t = ParseTheme(string(t))
	s.apply("set_theme", func(next *State) (bool, bool) {
		next.Theme = t
		s.presenter.ApplyPresentationMode(t)
		return true, false
	})
}

// Reset empties every layout bucket, restores the light theme and clears
// all minimized flags. The active widget set is kept on purpose.
func (s *Store) Reset() {
	s.apply("reset", func(next *State) (bool, bool) {
		next.Layouts = EmptyLayouts()
		next.Theme = ThemeLight
		next.Minimized = defaultMinimized()
		s.presenter.ApplyPresentationMode(ThemeLight)
		return true, true
	})
}

// PlaceDropped commits a widget dropped at item's position into all three
// buckets and activates it, replacing any item left behind by an earlier
// removal. It returns false, changing nothing, when the widget is unknown or
// already active.
func (s *Store) PlaceDropped(item LayoutItem) bool {
	return s.apply("drop", func(next *State) (bool, bool) {
		if !Known(item.ID) || next.IsActive(item.ID) {
			return false, false
		}
		for _, bp := range Breakpoints() {
			placed := fitDropped(item, Columns(bp), bp)
			bucket := slices.DeleteFunc(cloneItems(next.Layouts.Bucket(bp)), func(it LayoutItem) bool {
				return it.ID == item.ID
			})
			next.Layouts = next.Layouts.WithBucket(bp, append(bucket, placed))
		}
		next.Active = append(next.Active, item.ID)
		return true, true
	})
}

// fitDropped adapts a dropped item to one bucket: md wraps x into its eight
// columns, sm pins it to the single column, and every bucket keeps the item
// inside its width.
func fitDropped(item LayoutItem, cols int, bp Breakpoint) LayoutItem {
	it := item.clone()
	it.X = max(it.X, 0)
	it.Y = max(it.Y, 0)
	switch bp {
	case BreakpointMD:
		it.X %= cols
	case BreakpointSM:
		it.X = 0
	}
	it.W = min(max(it.W, 1), cols)
	it.H = max(it.H, 1)
	if it.X+it.W > cols {
		it.X = cols - it.W
	}
	return it
}

func knownOnly(ids []WidgetID) []WidgetID {
	out := make([]WidgetID, 0, len(ids))
	for _, id := range ids {
		if Known(id) {
			out = append(out, id)
		}
	}
	return out
}

// Resolved returns the bucket for bp as a renderer should draw it: items for
// inactive widgets are dropped, duplicates keep their first occurrence, and
// active widgets without an item get a packed position at the end.
func (st State) Resolved(bp Breakpoint) []LayoutItem {
	bucket := st.Layouts.Bucket(bp)
	out := make([]LayoutItem, 0, len(st.Active))
	for _, it := range bucket {
		if st.IsActive(it.ID) && indexOf(out, it.ID) < 0 {
			out = append(out, it.clone())
		}
	}
	var missing []WidgetID
	for _, id := range st.Active {
		if indexOf(out, id) < 0 {
			missing = append(missing, id)
		}
	}
	return append(out, Pack(out, missing, Columns(bp), InsertSize)...)
}
