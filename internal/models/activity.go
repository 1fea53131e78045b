package models

import "time"

// ActivityEntry is one persisted change notification
type ActivityEntry struct {
	ID         int64
	Sequence   int64
	Type       string
	Entity     string
	EntityID   string
	ParentID   string
	Related    []string
	OccurredAt time.Time
}
