package model

import "time"

// Room is a physical location that groups items.
type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined fields (not always populated).
	ItemCount int `json:"item_count,omitempty"`
}
