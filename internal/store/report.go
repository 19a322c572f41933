package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/pospravi/internal/model"
)

// InventoryReport computes the full aggregation over items, rooms and
// categories. Read-only; rooms and categories with no items appear with a
// zero count.
func InventoryReport(ctx context.Context, db *sql.DB) (*model.Report, error) {
	report := &model.Report{}

	var err error
	report.ByRoom, err = groupCounts(ctx, db,
		`SELECT r.name, COUNT(i.id) AS count, COALESCE(SUM(i.quantity), 0)
		 FROM rooms r
		 LEFT JOIN items i ON i.room_id = r.id
		 GROUP BY r.id
		 ORDER BY count DESC, r.name`)
	if err != nil {
		return nil, fmt.Errorf("aggregating by room: %w", err)
	}

	report.ByCategory, err = groupCounts(ctx, db,
		`SELECT c.name, COUNT(i.id) AS count, COALESCE(SUM(i.quantity), 0)
		 FROM categories c
		 LEFT JOIN items i ON i.category_id = c.id
		 GROUP BY c.id
		 ORDER BY count DESC, c.name`)
	if err != nil {
		return nil, fmt.Errorf("aggregating by category: %w", err)
	}

	report.ByStatus, err = groupCounts(ctx, db,
		`SELECT status, COUNT(*) AS count, COALESCE(SUM(quantity), 0)
		 FROM items
		 GROUP BY status
		 ORDER BY count DESC, status`)
	if err != nil {
		return nil, fmt.Errorf("aggregating by status: %w", err)
	}

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(quantity), 0) FROM items`,
	).Scan(&report.Overall.TotalItems, &report.Overall.TotalQuantity)
	if err != nil {
		return nil, fmt.Errorf("counting items: %w", err)
	}

	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&report.Overall.TotalRooms)
	if err != nil {
		return nil, fmt.Errorf("counting rooms: %w", err)
	}

	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&report.Overall.TotalCategories)
	if err != nil {
		return nil, fmt.Errorf("counting categories: %w", err)
	}

	return report, nil
}

func groupCounts(ctx context.Context, db *sql.DB, query string) ([]model.GroupCount, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.GroupCount
	for rows.Next() {
		var g model.GroupCount
		if err := rows.Scan(&g.Name, &g.Count, &g.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
