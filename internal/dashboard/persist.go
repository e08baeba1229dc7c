package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// DefaultStorageKey is the record key the dashboard persists under.
const DefaultStorageKey = "ew-dashboard-layouts-v1"

// Storage is a durable string key-value store.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Persister saves and restores the persisted subset of the dashboard.
type Persister interface {
	Load(ctx context.Context) Snapshot
	Save(ctx context.Context, s Snapshot) error
}

type record struct {
	State   *recordState `json:"state"`
	Version int          `json:"version"`
}

type recordState struct {
	Layouts         *recordLayouts     `json:"layouts"`
	SelectedWidgets *[]WidgetID        `json:"selectedWidgets"`
	Minimized       *map[WidgetID]bool `json:"minimized"`
}

type recordLayouts struct {
	LG *[]LayoutItem `json:"lg"`
	MD *[]LayoutItem `json:"md"`
	SM *[]LayoutItem `json:"sm"`
}

// Encode renders s as the durable record.
func Encode(s Snapshot) ([]byte, error) {
	layouts := s.Layouts.Clone()
	active := cloneIDs(s.Active)
	minimized := cloneFlags(s.Minimized)
	rec := record{
		State: &recordState{
			Layouts:         &recordLayouts{LG: &layouts.LG, MD: &layouts.MD, SM: &layouts.SM},
			SelectedWidgets: &active,
			Minimized:       &minimized,
		},
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode dashboard record: %w", err)
	}
	return data, nil
}

// Decode parses a durable record. Fields that are missing or null fall back
// to DefaultSnapshot independently. Unparsable input yields the defaults and
// a non-nil error describing the problem; the snapshot is always usable.
func Decode(data []byte) (Snapshot, error) {
	out := DefaultSnapshot()
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return out, fmt.Errorf("decode dashboard record: %w", err)
	}
	if rec.State == nil {
		return out, nil
	}
	if l := rec.State.Layouts; l != nil {
		if l.LG != nil {
			out.Layouts.LG = cloneItems(*l.LG)
		}
		if l.MD != nil {
			out.Layouts.MD = cloneItems(*l.MD)
		}
		if l.SM != nil {
			out.Layouts.SM = cloneItems(*l.SM)
		}
	}
	if ids := rec.State.SelectedWidgets; ids != nil {
		out.Active = cloneIDs(*ids)
	}
	if m := rec.State.Minimized; m != nil {
		out.Minimized = cloneFlags(*m)
	}
	return out, nil
}

// KVPersister stores the snapshot as one JSON record in a Storage.
type KVPersister struct {
	Storage Storage
	Key     string
	Logger  *slog.Logger
}

// NewKVPersister returns a persister writing under key, or DefaultStorageKey
// when key is empty.
func NewKVPersister(storage Storage, key string, logger *slog.Logger) *KVPersister {
	if key == "" {
		key = DefaultStorageKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &KVPersister{Storage: storage, Key: key, Logger: logger}
}

// Load reads the record once. A missing, unreadable or corrupt record
// produces the defaults.
func (p *KVPersister) Load(ctx context.Context) Snapshot {
	raw, ok, err := p.Storage.Get(ctx, p.Key)
	if err != nil {
		p.Logger.Warn("read dashboard record", slog.String("key", p.Key), slog.String("error", err.Error()))
		return DefaultSnapshot()
	}
	if !ok {
		p.Logger.Debug("no dashboard record, using defaults", slog.String("key", p.Key))
		return DefaultSnapshot()
	}
	snap, err := Decode([]byte(raw))
	if err != nil {
		p.Logger.Warn("corrupt dashboard record, using defaults", slog.String("key", p.Key), slog.String("error", err.Error()))
	}
	return snap
}

// Save writes s synchronously.
func (p *KVPersister) Save(ctx context.Context, s Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := p.Storage.Set(ctx, p.Key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", p.Key, err)
	}
	return nil
}
