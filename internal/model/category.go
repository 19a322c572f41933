package model

import "time"

// Category is a classification label for items, optionally nested under a
// parent category. Parents form a forest; the store does not check for
// cycles.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ParentID    *int64    `json:"parent_category_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined fields (not always populated).
	ItemCount int `json:"item_count,omitempty"`
}
