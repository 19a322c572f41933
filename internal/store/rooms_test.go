package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/pospravi/internal/db"
)

func TestResolveRoomCreatesThenReuses(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id1, err := ResolveRoom(ctx, database, "Garage", "")
	if err != nil {
		t.Fatalf("ResolveRoom: %v", err)
	}

	id2, err := ResolveRoom(ctx, database, "Garage", "")
	if err != nil {
		t.Fatalf("second ResolveRoom: %v", err)
	}
	if id1 != id2 {
		t.Errorf("expected same id on repeat resolve, got %d and %d", id1, id2)
	}

	rooms, _ := ListRooms(ctx, database)
	if len(rooms) != 1 {
		t.Errorf("expected 1 room, got %d", len(rooms))
	}
}

func TestResolveRoomMetadataFirstWriteWins(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, _ := ResolveRoom(ctx, database, "Attic", "under the roof")
	ResolveRoom(ctx, database, "Attic", "a different description")

	room, err := GetRoom(ctx, database, id)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if room.Description != "under the roof" {
		t.Errorf("expected original description preserved, got %q", room.Description)
	}
}

func TestCreateRoomDuplicateName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateRoom(ctx, database, "Kitchen", ""); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	_, err := CreateRoom(ctx, database, "Kitchen", "")
	if !errors.Is(err, ErrConstraint) {
		t.Errorf("expected ErrConstraint for duplicate name, got %v", err)
	}
}

func TestGetRoomByName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, _ := CreateRoom(ctx, database, "Basement", "")

	room, err := GetRoomByName(ctx, database, "Basement")
	if err != nil {
		t.Fatalf("GetRoomByName: %v", err)
	}
	if room == nil || room.ID != id {
		t.Errorf("expected room with id %d, got %+v", id, room)
	}

	missing, err := GetRoomByName(ctx, database, "Observatory")
	if err != nil {
		t.Fatalf("GetRoomByName missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown room, got %+v", missing)
	}
}

func TestListRoomsItemCounts(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateRoom(ctx, database, "Empty Room", "")
	AddItem(ctx, database, ItemParams{Name: "Lamp", Room: "Garage"})
	AddItem(ctx, database, ItemParams{Name: "Drill", Room: "Garage"})

	rooms, err := ListRooms(ctx, database)
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}

	// Ordered by name: "Empty Room" before "Garage".
	if rooms[0].Name != "Empty Room" || rooms[0].ItemCount != 0 {
		t.Errorf("expected Empty Room with 0 items, got %s with %d", rooms[0].Name, rooms[0].ItemCount)
	}
	if rooms[1].Name != "Garage" || rooms[1].ItemCount != 2 {
		t.Errorf("expected Garage with 2 items, got %s with %d", rooms[1].Name, rooms[1].ItemCount)
	}
}
