package repository

import "time"

// Entry represents a kv_store row.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
