package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/erazemk/pospravi/internal/db"
	"github.com/erazemk/pospravi/internal/imaging"
	"github.com/erazemk/pospravi/internal/model"
	"github.com/erazemk/pospravi/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "init":
		err = cmdInit(args)
	case "add-room":
		err = cmdAddRoom(args)
	case "add-category":
		err = cmdAddCategory(args)
	case "add-item":
		err = cmdAddItem(args)
	case "update-status":
		err = cmdUpdateStatus(args)
	case "set-photo":
		err = cmdSetPhoto(args)
	case "list-rooms":
		err = cmdListRooms(args)
	case "list-categories":
		err = cmdListCategories(args)
	case "list-items":
		err = cmdListItems(args)
	case "start-session":
		err = cmdStartSession(args)
	case "end-session":
		err = cmdEndSession(args)
	case "current-session":
		err = cmdCurrentSession(args)
	case "report":
		err = cmdReport(args)
	case "help", "-h", "-help", "--help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: pospravi <command> [flags] [args]

Commands:
  init                            create the database and schema
  add-room <name> [description]   add a room
  add-category <name> [desc]      add a category (-parent <name>)
  add-item <name>                 add an item (-room, -category, -qty,
                                  -desc, -status, -notes)
  update-status <id> <status>     set an item's status (-notes)
  set-photo <id> <file>           attach a photo to an item
  list-rooms                      list rooms with item counts
  list-categories                 list categories with item counts
  list-items                      list items (-room, -category, -status,
                                  -limit; default 50 most recent)
  start-session                   start a decluttering session (-room, -notes)
  end-session <id>                end a session (-notes, -processed)
  current-session                 show the active session
  report                          print the full inventory report

Every command accepts -db <path> (default: ~/.pospravi/inventory.sqlite3)
and -log <path> (append log output to a file).
`)
}

// newFlagSet creates a flag set with the flags shared by every command.
func newFlagSet(name string) (*flag.FlagSet, *string, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	dbPath := fs.String("db", db.DefaultPath(), "path to SQLite database file")
	logPath := fs.String("log", "", "log file path (default: stdout/stderr only)")
	return fs, dbPath, logPath
}

// withStore sets up logging, opens the database (creating the file and the
// schema on first use) and runs fn. The connection is closed on every
// return path.
func withStore(dbPath, logPath string, fn func(ctx context.Context, database *sql.DB) error) error {
	closeLog, err := setupLogger(logPath)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	slog.Info("database ready", "path", dbPath)

	return fn(context.Background(), database)
}

func cmdInit(args []string) error {
	fs, dbPath, logPath := newFlagSet("init")
	fs.Parse(args)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		fmt.Printf("Database initialized at: %s\n", *dbPath)
		return nil
	})
}

func cmdAddRoom(args []string) error {
	fs, dbPath, logPath := newFlagSet("add-room")
	fs.Parse(args)
	if fs.NArg() < 1 {
		return errors.New("usage: pospravi add-room <name> [description]")
	}
	name := fs.Arg(0)
	description := fs.Arg(1)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		id, err := store.CreateRoom(ctx, database, name, description)
		if err != nil {
			return err
		}
		fmt.Printf("Added room: %s (ID: %d)\n", name, id)
		return nil
	})
}

func cmdAddCategory(args []string) error {
	fs, dbPath, logPath := newFlagSet("add-category")
	parent := fs.String("parent", "", "parent category name (must already exist)")
	fs.Parse(args)
	if fs.NArg() < 1 {
		return errors.New("usage: pospravi add-category [-parent <name>] <name> [description]")
	}
	name := fs.Arg(0)
	description := fs.Arg(1)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		id, err := store.CreateCategory(ctx, database, name, *parent, description)
		if err != nil {
			return err
		}
		fmt.Printf("Added category: %s (ID: %d)\n", name, id)
		return nil
	})
}

func cmdAddItem(args []string) error {
	fs, dbPath, logPath := newFlagSet("add-item")
	room := fs.String("room", "", "room name (created if unknown)")
	category := fs.String("category", "", "category name (created if unknown)")
	qty := fs.Int("qty", 1, "quantity")
	desc := fs.String("desc", "", "item description")
	status := fs.String("status", model.StatusPending, "initial status ("+strings.Join(model.ItemStatuses, "|")+")")
	notes := fs.String("notes", "", "notes")
	fs.Parse(args)
	if fs.NArg() < 1 {
		return errors.New("usage: pospravi add-item [flags] <name>")
	}

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		id, err := store.AddItem(ctx, database, store.ItemParams{
			Name:        fs.Arg(0),
			Room:        *room,
			Category:    *category,
			Quantity:    *qty,
			Description: *desc,
			Status:      *status,
			Notes:       *notes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added item: %s (ID: %d)\n", fs.Arg(0), id)
		return nil
	})
}

func cmdUpdateStatus(args []string) error {
	fs, dbPath, logPath := newFlagSet("update-status")
	notes := fs.String("notes", "", "replace the item's notes")
	fs.Parse(args)
	if fs.NArg() < 2 {
		return errors.New("usage: pospravi update-status [-notes <text>] <id> <status>")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", fs.Arg(0))
	}
	status := fs.Arg(1)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		if err := store.UpdateItemStatus(ctx, database, id, status, *notes); err != nil {
			return err
		}
		fmt.Printf("Item %d: %s\n", id, status)
		return nil
	})
}

func cmdSetPhoto(args []string) error {
	fs, dbPath, logPath := newFlagSet("set-photo")
	fs.Parse(args)
	if fs.NArg() < 2 {
		return errors.New("usage: pospravi set-photo <id> <file>")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", fs.Arg(0))
	}

	f, err := os.Open(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("opening photo: %w", err)
	}
	defer f.Close()

	photo, err := imaging.Process(f)
	if err != nil {
		return err
	}

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		if err := store.SetItemPhoto(ctx, database, id, photo.Data, photo.MIME); err != nil {
			return err
		}
		fmt.Printf("Photo attached to item %d (%d bytes)\n", id, len(photo.Data))
		return nil
	})
}

func cmdListRooms(args []string) error {
	fs, dbPath, logPath := newFlagSet("list-rooms")
	fs.Parse(args)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		rooms, err := store.ListRooms(ctx, database)
		if err != nil {
			return err
		}
		for _, r := range rooms {
			fmt.Printf("%s: %d items\n", r.Name, r.ItemCount)
			if r.Description != "" {
				fmt.Printf("  %s\n", r.Description)
			}
		}
		return nil
	})
}

func cmdListCategories(args []string) error {
	fs, dbPath, logPath := newFlagSet("list-categories")
	fs.Parse(args)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		categories, err := store.ListCategories(ctx, database)
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%s: %d items\n", c.Name, c.ItemCount)
			if c.Description != "" {
				fmt.Printf("  %s\n", c.Description)
			}
		}
		return nil
	})
}

func cmdListItems(args []string) error {
	fs, dbPath, logPath := newFlagSet("list-items")
	room := fs.String("room", "", "filter by room name")
	category := fs.String("category", "", "filter by category name")
	status := fs.String("status", "", "filter by status")
	limit := fs.Int("limit", 50, "maximum number of items")
	fs.Parse(args)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		items, err := store.ListItems(ctx, database, store.ItemFilter{
			Room:     *room,
			Category: *category,
			Status:   *status,
			Limit:    *limit,
		})
		if err != nil {
			return err
		}
		for _, item := range items {
			roomName := item.RoomName
			if roomName == "" {
				roomName = "-"
			}
			categoryName := item.CategoryName
			if categoryName == "" {
				categoryName = "-"
			}
			fmt.Printf("%d. %s (%dx) - %s / %s - %s\n",
				item.ID, item.Name, item.Quantity, roomName, categoryName, item.Status)
		}
		return nil
	})
}

func cmdStartSession(args []string) error {
	fs, dbPath, logPath := newFlagSet("start-session")
	room := fs.String("room", "", "room to work in (must already exist)")
	notes := fs.String("notes", "", "session notes")
	fs.Parse(args)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		id, err := store.StartSession(ctx, database, *room, *notes)
		if err != nil {
			return err
		}
		if *room != "" {
			s, err := store.GetSession(ctx, database, id)
			if err == nil && s != nil && s.RoomID == nil {
				slog.Warn("room not found, session not scoped to it", "room", *room)
			}
		}
		fmt.Printf("Started session %d\n", id)
		return nil
	})
}

func cmdEndSession(args []string) error {
	fs, dbPath, logPath := newFlagSet("end-session")
	notes := fs.String("notes", "", "replace the session's notes")
	processed := fs.Int("processed", -1, "number of items processed")
	fs.Parse(args)
	if fs.NArg() < 1 {
		return errors.New("usage: pospravi end-session [-notes <text>] [-processed <n>] <id>")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid session id %q", fs.Arg(0))
	}

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		if *processed >= 0 {
			if err := store.SetItemsProcessed(ctx, database, id, *processed); err != nil {
				return err
			}
		}

		var n *string
		if *notes != "" {
			n = notes
		}
		if err := store.EndSession(ctx, database, id, n); err != nil {
			return err
		}
		fmt.Printf("Ended session %d\n", id)
		return nil
	})
}

func cmdCurrentSession(args []string) error {
	fs, dbPath, logPath := newFlagSet("current-session")
	fs.Parse(args)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		s, err := store.CurrentSession(ctx, database)
		if err != nil {
			return err
		}
		if s == nil {
			fmt.Println("No active session.")
			return nil
		}
		room := s.RoomName
		if room == "" {
			room = "-"
		}
		fmt.Printf("Session %d (room: %s, started: %s)\n", s.ID, room, s.StartTime.Format("2006-01-02 15:04"))
		if s.Notes != "" {
			fmt.Printf("  %s\n", s.Notes)
		}
		return nil
	})
}

func cmdReport(args []string) error {
	fs, dbPath, logPath := newFlagSet("report")
	fs.Parse(args)

	return withStore(*dbPath, *logPath, func(ctx context.Context, database *sql.DB) error {
		report, err := store.InventoryReport(ctx, database)
		if err != nil {
			return err
		}

		fmt.Println("=== INVENTORY REPORT ===")
		fmt.Println()
		fmt.Printf("Total Items: %d (%d units)\n", report.Overall.TotalItems, report.Overall.TotalQuantity)
		fmt.Printf("Total Rooms: %d\n", report.Overall.TotalRooms)
		fmt.Printf("Total Categories: %d\n", report.Overall.TotalCategories)

		fmt.Println()
		fmt.Println("--- By Status ---")
		for _, g := range report.ByStatus {
			fmt.Printf("%s: %d items (%d units)\n", g.Name, g.Count, g.TotalQuantity)
		}

		fmt.Println()
		fmt.Println("--- By Room ---")
		for _, g := range report.ByRoom {
			if g.Count > 0 {
				fmt.Printf("%s: %d items (%d units)\n", g.Name, g.Count, g.TotalQuantity)
			}
		}

		fmt.Println()
		fmt.Println("--- By Category ---")
		for _, g := range report.ByCategory {
			if g.Count > 0 {
				fmt.Printf("%s: %d items (%d units)\n", g.Name, g.Count, g.TotalQuantity)
			}
		}
		return nil
	})
}
