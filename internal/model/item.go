package model

import "time"

// Item is a single inventory entry with a disposition status.
type Item struct {
	ID          int64     `json:"id"`
	RoomID      *int64    `json:"room_id,omitempty"`
	CategoryID  *int64    `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	PhotoMime   string    `json:"photo_mime,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined fields (not always populated).
	RoomName     string `json:"room,omitempty"`
	CategoryName string `json:"category,omitempty"`
}

// Item statuses.
const (
	StatusPending   = "pending"
	StatusKeep      = "keep"
	StatusDonate    = "donate"
	StatusDiscard   = "discard"
	StatusProcessed = "processed"
)

// ItemStatuses lists all valid statuses, in workflow order.
var ItemStatuses = []string{
	StatusPending,
	StatusKeep,
	StatusDonate,
	StatusDiscard,
	StatusProcessed,
}

// ValidItemStatus reports whether status is one of the known statuses.
func ValidItemStatus(status string) bool {
	switch status {
	case StatusPending, StatusKeep, StatusDonate, StatusDiscard, StatusProcessed:
		return true
	}
	return false
}
