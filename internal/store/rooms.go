package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/pospravi/internal/model"
)

// CreateRoom inserts a new room and returns its id. A duplicate name fails
// with ErrConstraint.
func CreateRoom(ctx context.Context, db *sql.DB, name, description string) (int64, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO rooms (name, description) VALUES (?, ?)`,
		name, description,
	)
	if err != nil {
		if isConstraint(err) {
			return 0, fmt.Errorf("room %q already exists: %w", name, ErrConstraint)
		}
		return 0, fmt.Errorf("creating room: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting room id: %w", err)
	}
	return id, nil
}

// ResolveRoom returns the id of the room with the given name, creating the
// room if it does not exist. A repeat resolve reuses the existing row and
// never updates its description.
func ResolveRoom(ctx context.Context, db *sql.DB, name, description string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx,
		`SELECT id FROM rooms WHERE name = ?`, name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("looking up room: %w", err)
	}
	return CreateRoom(ctx, db, name, description)
}

// GetRoom returns a room by id, or nil if it does not exist.
func GetRoom(ctx context.Context, db *sql.DB, id int64) (*model.Room, error) {
	return getRoom(ctx, db, `WHERE id = ?`, id)
}

// GetRoomByName returns a room by its unique name, or nil if it does not
// exist.
func GetRoomByName(ctx context.Context, db *sql.DB, name string) (*model.Room, error) {
	return getRoom(ctx, db, `WHERE name = ?`, name)
}

func getRoom(ctx context.Context, db *sql.DB, where string, arg any) (*model.Room, error) {
	r := &model.Room{}
	var description sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at FROM rooms `+where, arg,
	).Scan(&r.ID, &r.Name, &description, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting room: %w", err)
	}
	r.Description = description.String
	return r, nil
}

// ListRooms returns all rooms with their item counts, ordered by name.
func ListRooms(ctx context.Context, db *sql.DB) ([]model.Room, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT r.id, r.name, r.description, r.created_at, COUNT(i.id) AS item_count
		 FROM rooms r
		 LEFT JOIN items i ON i.room_id = r.id
		 GROUP BY r.id
		 ORDER BY r.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var r model.Room
		var description sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &description, &r.CreatedAt, &r.ItemCount); err != nil {
			return nil, fmt.Errorf("scanning room: %w", err)
		}
		r.Description = description.String
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}
