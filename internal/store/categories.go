package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/pospravi/internal/model"
)

// CreateCategory inserts a new category and returns its id. If parentName
// is given it is looked up but never created: an unknown parent leaves the
// reference NULL. A duplicate name fails with ErrConstraint.
func CreateCategory(ctx context.Context, db *sql.DB, name, parentName, description string) (int64, error) {
	var parentID *int64
	if parentName != "" {
		var pid int64
		err := db.QueryRowContext(ctx,
			`SELECT id FROM categories WHERE name = ?`, parentName,
		).Scan(&pid)
		if err == nil {
			parentID = &pid
		} else if err != sql.ErrNoRows {
			return 0, fmt.Errorf("looking up parent category: %w", err)
		}
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO categories (name, parent_category_id, description) VALUES (?, ?, ?)`,
		name, parentID, description,
	)
	if err != nil {
		if isConstraint(err) {
			return 0, fmt.Errorf("category %q already exists: %w", name, ErrConstraint)
		}
		return 0, fmt.Errorf("creating category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting category id: %w", err)
	}
	return id, nil
}

// ResolveCategory returns the id of the category with the given name,
// creating the category if it does not exist. A repeat resolve reuses the
// existing row unchanged; parentName and description only apply to a newly
// created row.
func ResolveCategory(ctx context.Context, db *sql.DB, name, parentName, description string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE name = ?`, name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("looking up category: %w", err)
	}
	return CreateCategory(ctx, db, name, parentName, description)
}

// GetCategory returns a category by id, or nil if it does not exist.
func GetCategory(ctx context.Context, db *sql.DB, id int64) (*model.Category, error) {
	return getCategory(ctx, db, `WHERE id = ?`, id)
}

// GetCategoryByName returns a category by its unique name, or nil if it
// does not exist.
func GetCategoryByName(ctx context.Context, db *sql.DB, name string) (*model.Category, error) {
	return getCategory(ctx, db, `WHERE name = ?`, name)
}

func getCategory(ctx context.Context, db *sql.DB, where string, arg any) (*model.Category, error) {
	c := &model.Category{}
	var parentID sql.NullInt64
	var description sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, parent_category_id, description, created_at FROM categories `+where, arg,
	).Scan(&c.ID, &c.Name, &parentID, &description, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	if parentID.Valid {
		c.ParentID = &parentID.Int64
	}
	c.Description = description.String
	return c, nil
}

// ListCategories returns all categories with their item counts, ordered by
// name.
func ListCategories(ctx context.Context, db *sql.DB) ([]model.Category, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT c.id, c.name, c.parent_category_id, c.description, c.created_at,
		        COUNT(i.id) AS item_count
		 FROM categories c
		 LEFT JOIN items i ON i.category_id = c.id
		 GROUP BY c.id
		 ORDER BY c.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		var parentID sql.NullInt64
		var description sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &parentID, &description, &c.CreatedAt, &c.ItemCount); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		if parentID.Valid {
			c.ParentID = &parentID.Int64
		}
		c.Description = description.String
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
