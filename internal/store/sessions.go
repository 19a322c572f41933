package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/pospravi/internal/model"
)

// StartSession opens a new session and returns its id. If room is given it
// is looked up by name but never created: an unknown room leaves the
// session unscoped.
func StartSession(ctx context.Context, db *sql.DB, room, notes string) (int64, error) {
	var roomID *int64
	if room != "" {
		r, err := GetRoomByName(ctx, db, room)
		if err != nil {
			return 0, err
		}
		if r != nil {
			roomID = &r.ID
		}
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO sessions (room_id, notes) VALUES (?, ?)`,
		roomID, notes,
	)
	if err != nil {
		return 0, fmt.Errorf("starting session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting session id: %w", err)
	}
	return id, nil
}

// EndSession closes a session, setting end_time to the current instant.
// A nil notes value preserves the stored notes; a non-nil value replaces
// them. An unknown id fails with ErrNotFound.
func EndSession(ctx context.Context, db *sql.DB, id int64, notes *string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE sessions SET end_time = CURRENT_TIMESTAMP, notes = COALESCE(?, notes)
		 WHERE id = ?`,
		notes, id,
	)
	if err != nil {
		return fmt.Errorf("ending session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking session update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	return nil
}

// SetItemsProcessed records how many items were handled during a session.
// The counter is caller-reported; item mutations never touch it.
func SetItemsProcessed(ctx context.Context, db *sql.DB, id int64, n int) error {
	if n < 0 {
		return fmt.Errorf("items processed must not be negative: %w", ErrConstraint)
	}

	result, err := db.ExecContext(ctx,
		`UPDATE sessions SET items_processed = ? WHERE id = ?`,
		n, id,
	)
	if err != nil {
		return fmt.Errorf("setting items processed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking session update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	return nil
}

// CurrentSession returns the most recently started session that has not
// been ended, or nil if no session is active.
func CurrentSession(ctx context.Context, db *sql.DB) (*model.Session, error) {
	return getSession(ctx, db,
		`WHERE s.end_time IS NULL ORDER BY s.start_time DESC, s.id DESC LIMIT 1`)
}

// GetSession returns a session by id, or nil if it does not exist.
func GetSession(ctx context.Context, db *sql.DB, id int64) (*model.Session, error) {
	return getSession(ctx, db, `WHERE s.id = ?`, id)
}

func getSession(ctx context.Context, db *sql.DB, clause string, args ...any) (*model.Session, error) {
	s := &model.Session{}
	var roomID sql.NullInt64
	var endTime sql.NullTime
	var notes, roomName sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT s.id, s.room_id, s.start_time, s.end_time, s.items_processed, s.notes,
		        r.name AS room_name
		 FROM sessions s
		 LEFT JOIN rooms r ON r.id = s.room_id `+clause,
		args...,
	).Scan(&s.ID, &roomID, &s.StartTime, &endTime, &s.ItemsProcessed, &notes, &roomName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}
	if roomID.Valid {
		s.RoomID = &roomID.Int64
	}
	if endTime.Valid {
		s.EndTime = &endTime.Time
	}
	s.Notes = notes.String
	s.RoomName = roomName.String
	return s, nil
}
