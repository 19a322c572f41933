package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/pospravi/internal/model"
)

// ItemParams describes a new item. Name is required. Room and Category are
// resolved by name and created when unknown; an empty name leaves the
// reference unset. Quantity defaults to 1, Status to pending.
type ItemParams struct {
	Name        string
	Room        string
	Category    string
	Quantity    int
	Description string
	Status      string
	Notes       string
}

// AddItem inserts a new item, resolving its room and category, and returns
// its id.
func AddItem(ctx context.Context, db *sql.DB, p ItemParams) (int64, error) {
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	if p.Quantity < 0 {
		return 0, fmt.Errorf("quantity must be positive: %w", ErrConstraint)
	}
	if p.Status == "" {
		p.Status = model.StatusPending
	}
	if !model.ValidItemStatus(p.Status) {
		return 0, fmt.Errorf("invalid status %q: %w", p.Status, ErrConstraint)
	}

	var roomID, categoryID *int64
	if p.Room != "" {
		id, err := ResolveRoom(ctx, db, p.Room, "")
		if err != nil {
			return 0, err
		}
		roomID = &id
	}
	if p.Category != "" {
		id, err := ResolveCategory(ctx, db, p.Category, "", "")
		if err != nil {
			return 0, err
		}
		categoryID = &id
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (room_id, category_id, name, description, quantity, status, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		roomID, categoryID, p.Name, p.Description, p.Quantity, p.Status, p.Notes,
	)
	if err != nil {
		if isConstraint(err) {
			return 0, fmt.Errorf("inserting item: %w", ErrConstraint)
		}
		return 0, fmt.Errorf("inserting item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting item id: %w", err)
	}
	return id, nil
}

// UpdateItemStatus sets an item's status, refreshing updated_at. Notes are
// replaced only when a non-empty value is supplied, otherwise existing
// notes are preserved. An unknown status fails with ErrConstraint, an
// unknown id with ErrNotFound.
func UpdateItemStatus(ctx context.Context, db *sql.DB, id int64, status, notes string) error {
	if !model.ValidItemStatus(status) {
		return fmt.Errorf("invalid status %q: %w", status, ErrConstraint)
	}

	var result sql.Result
	var err error
	if notes != "" {
		result, err = db.ExecContext(ctx,
			`UPDATE items SET status = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			status, notes, id,
		)
	} else {
		result, err = db.ExecContext(ctx,
			`UPDATE items SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			status, id,
		)
	}
	if err != nil {
		return fmt.Errorf("updating item status: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking status update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetItem returns an item by id with its room and category names joined,
// or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	rows, err := db.QueryContext(ctx, itemQuery+` AND i.id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// ItemFilter selects items by exact room name, category name and status.
// Empty fields are ignored; set fields combine with AND. Limit > 0 caps
// the result to the leading N rows.
type ItemFilter struct {
	Room     string
	Category string
	Status   string
	Limit    int
}

const itemQuery = `
	SELECT i.id, i.room_id, i.category_id, i.name, i.description, i.quantity,
	       i.status, i.notes, i.photo_mime, i.created_at, i.updated_at,
	       r.name AS room_name, c.name AS category_name
	FROM items i
	LEFT JOIN rooms r ON r.id = i.room_id
	LEFT JOIN categories c ON c.id = i.category_id
	WHERE 1=1`

// ListItems returns items matching the filter, most recently created
// first.
func ListItems(ctx context.Context, db *sql.DB, f ItemFilter) ([]model.Item, error) {
	query := itemQuery
	var args []any

	if f.Room != "" {
		query += ` AND r.name = ?`
		args = append(args, f.Room)
	}
	if f.Category != "" {
		query += ` AND c.name = ?`
		args = append(args, f.Category)
	}
	if f.Status != "" {
		query += ` AND i.status = ?`
		args = append(args, f.Status)
	}

	// id breaks ties within the one-second timestamp resolution.
	query += ` ORDER BY i.created_at DESC, i.id DESC`

	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		var item model.Item
		var roomID, categoryID sql.NullInt64
		var description, notes, photoMime, roomName, categoryName sql.NullString
		if err := rows.Scan(&item.ID, &roomID, &categoryID, &item.Name, &description,
			&item.Quantity, &item.Status, &notes, &photoMime,
			&item.CreatedAt, &item.UpdatedAt, &roomName, &categoryName); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		if roomID.Valid {
			item.RoomID = &roomID.Int64
		}
		if categoryID.Valid {
			item.CategoryID = &categoryID.Int64
		}
		item.Description = description.String
		item.Notes = notes.String
		item.PhotoMime = photoMime.String
		item.RoomName = roomName.String
		item.CategoryName = categoryName.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetItemPhoto attaches photo data to an item. An unknown id fails with
// ErrNotFound.
func SetItemPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET photo = ?, photo_mime = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item photo: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking photo update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetItemPhoto returns an item's photo data and MIME type.
func GetItemPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM items WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item photo: %w", err)
	}
	return photo, mime.String, nil
}
