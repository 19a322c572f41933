package model

// GroupCount is one aggregation bucket: item count and summed quantity for
// a room, category or status.
type GroupCount struct {
	Name          string `json:"name"`
	Count         int    `json:"count"`
	TotalQuantity int    `json:"total_quantity"`
}

// Overall holds store-wide totals.
type Overall struct {
	TotalItems      int `json:"total_items"`
	TotalQuantity   int `json:"total_quantity"`
	TotalRooms      int `json:"total_rooms"`
	TotalCategories int `json:"total_categories"`
}

// Report is the full inventory aggregation.
type Report struct {
	Overall    Overall      `json:"overall"`
	ByRoom     []GroupCount `json:"by_room"`
	ByCategory []GroupCount `json:"by_category"`
	ByStatus   []GroupCount `json:"by_status"`
}
