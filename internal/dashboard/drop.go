package dashboard

import "log/slog"

// Drop outcomes passed to DropRecorder.
const (
	DropPlaced    = "placed"
	DropUnknown   = "unknown"
	DropDuplicate = "duplicate"
)

// DropRecorder counts drop outcomes.
type DropRecorder interface {
	DropHandled(outcome string)
}

// DropTarget turns a drag payload released on the grid into a store command.
type DropTarget struct {
	Store    *Store
	Recorder DropRecorder
	Logger   *slog.Logger
}

// NewDropTarget returns a DropTarget committing into store.
func NewDropTarget(store *Store, rec DropRecorder, logger *slog.Logger) *DropTarget {
	if logger == nil {
		logger = slog.Default()
	}
	return &DropTarget{Store: store, Recorder: rec, Logger: logger}
}

// Drop places the widget named by payload at grid cell (x, y) with DropSize.
// Empty or unknown payloads and widgets that are already active are ignored;
// the return value reports whether anything was placed.
func (d *DropTarget) Drop(payload string, x, y int) bool {
	id, ok := ParseWidgetID(payload)
	if !ok {
		d.record(DropUnknown)
		d.Logger.Debug("ignored drop", slog.String("payload", payload))
		return false
	}
	placed := d.Store.PlaceDropped(LayoutItem{ID: id, X: x, Y: y, W: DropSize.W, H: DropSize.H})
	if !placed {
		d.record(DropDuplicate)
		return false
	}
	d.record(DropPlaced)
	return true
}

func (d *DropTarget) record(outcome string) {
	if d.Recorder != nil {
		d.Recorder.DropHandled(outcome)
	}
}
