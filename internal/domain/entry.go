package domain

import "time"

// Entry is a diary entry. OwnerID is set once at creation and never changes;
// entries are append-only at the API surface.
type Entry struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	OwnerID   int64
}
