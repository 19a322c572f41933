package store

import (
	"context"
	"testing"

	"github.com/erazemk/pospravi/internal/db"
	"github.com/erazemk/pospravi/internal/model"
)

func TestReportGroupsByRoom(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddItem(ctx, database, ItemParams{Name: "Lamp", Room: "Garage", Category: "Electronics"})
	AddItem(ctx, database, ItemParams{Name: "Drill", Room: "Garage", Category: "Tools"})

	report, err := InventoryReport(ctx, database)
	if err != nil {
		t.Fatalf("InventoryReport: %v", err)
	}

	if len(report.ByRoom) != 1 {
		t.Fatalf("expected 1 room group, got %d", len(report.ByRoom))
	}
	g := report.ByRoom[0]
	if g.Name != "Garage" || g.Count != 2 || g.TotalQuantity != 2 {
		t.Errorf("expected Garage with count 2 and quantity 2, got %+v", g)
	}
}

func TestReportIncludesEmptyRooms(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateRoom(ctx, database, "Attic", "")
	AddItem(ctx, database, ItemParams{Name: "Lamp", Room: "Garage"})

	report, _ := InventoryReport(ctx, database)
	if len(report.ByRoom) != 2 {
		t.Fatalf("expected 2 room groups, got %d", len(report.ByRoom))
	}

	// Ordered by count descending: Garage first, then the empty Attic.
	if report.ByRoom[0].Name != "Garage" {
		t.Errorf("expected Garage first, got %s", report.ByRoom[0].Name)
	}
	if report.ByRoom[1].Name != "Attic" || report.ByRoom[1].Count != 0 || report.ByRoom[1].TotalQuantity != 0 {
		t.Errorf("expected empty Attic with zero counts, got %+v", report.ByRoom[1])
	}
}

func TestReportQuantitySums(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddItem(ctx, database, ItemParams{Name: "Plates", Room: "Kitchen", Quantity: 8})
	AddItem(ctx, database, ItemParams{Name: "Mugs", Room: "Kitchen", Quantity: 4})

	report, _ := InventoryReport(ctx, database)
	if report.ByRoom[0].TotalQuantity != 12 {
		t.Errorf("expected quantity sum 12, got %d", report.ByRoom[0].TotalQuantity)
	}
	if report.Overall.TotalItems != 2 || report.Overall.TotalQuantity != 12 {
		t.Errorf("expected 2 items / 12 units overall, got %+v", report.Overall)
	}
}

func TestReportCountInvariants(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	lamp, _ := AddItem(ctx, database, ItemParams{Name: "Lamp", Room: "Garage", Category: "Electronics"})
	AddItem(ctx, database, ItemParams{Name: "Drill", Room: "Garage", Category: "Tools"})
	couch, _ := AddItem(ctx, database, ItemParams{Name: "Couch", Room: "Living Room", Category: "Furniture"})
	AddItem(ctx, database, ItemParams{Name: "Books", Room: "Living Room", Category: "Media", Quantity: 20})
	UpdateItemStatus(ctx, database, lamp, model.StatusDonate, "")
	UpdateItemStatus(ctx, database, couch, model.StatusKeep, "")

	report, err := InventoryReport(ctx, database)
	if err != nil {
		t.Fatalf("InventoryReport: %v", err)
	}

	var statusCount, roomCount int
	for _, g := range report.ByStatus {
		statusCount += g.Count
	}
	for _, g := range report.ByRoom {
		roomCount += g.Count
	}

	if statusCount != report.Overall.TotalItems {
		t.Errorf("status counts sum to %d, want total items %d", statusCount, report.Overall.TotalItems)
	}
	if roomCount != report.Overall.TotalItems {
		t.Errorf("room counts sum to %d, want total items %d", roomCount, report.Overall.TotalItems)
	}
}

func TestReportOverallTotals(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateRoom(ctx, database, "Attic", "")
	CreateCategory(ctx, database, "Seasonal", "", "")
	AddItem(ctx, database, ItemParams{Name: "Lamp", Room: "Garage", Category: "Electronics"})

	report, _ := InventoryReport(ctx, database)
	if report.Overall.TotalRooms != 2 {
		t.Errorf("expected 2 rooms, got %d", report.Overall.TotalRooms)
	}
	if report.Overall.TotalCategories != 2 {
		t.Errorf("expected 2 categories, got %d", report.Overall.TotalCategories)
	}
}

func TestReportEmptyStore(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	report, err := InventoryReport(ctx, database)
	if err != nil {
		t.Fatalf("InventoryReport: %v", err)
	}
	if report.Overall.TotalItems != 0 || report.Overall.TotalQuantity != 0 {
		t.Errorf("expected zero totals, got %+v", report.Overall)
	}
	if len(report.ByStatus) != 0 {
		t.Errorf("expected no status groups, got %d", len(report.ByStatus))
	}
}
