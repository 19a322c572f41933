package model

import "time"

// Session is one bounded decluttering work pass, optionally scoped to a
// room. A session is active while EndTime is nil.
type Session struct {
	ID             int64      `json:"id"`
	RoomID         *int64     `json:"room_id,omitempty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	ItemsProcessed int        `json:"items_processed"`
	Notes          string     `json:"notes,omitempty"`

	// Joined fields (not always populated).
	RoomName string `json:"room,omitempty"`
}
