package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"restaurant-backend/internal/database"
	"restaurant-backend/internal/models"
)

// Repository provides PostgreSQL persistence for menu items. It also
// implements Reader for the order service.
type Repository struct {
	db *database.DB
}

// NewRepository creates a new menu repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// LookupMany returns the catalog entries for the given ids in a single
// query. Unknown ids are absent from the result.
func (r *Repository) LookupMany(ctx context.Context, ids []int64) (map[int64]CatalogEntry, error) {
	entries := make(map[int64]CatalogEntry, len(ids))
	if len(ids) == 0 {
		return entries, nil
	}

	rows, err := r.db.Query(ctx, database.LookupMenuItemsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup menu items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			entry CatalogEntry
		)
		if err := rows.Scan(&id, &entry.Name, &entry.UnitPrice, &entry.Available); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		entries[id] = entry
	}

	return entries, rows.Err()
}

// Insert persists a new menu item and fills in its id and timestamp.
func (r *Repository) Insert(ctx context.Context, item *models.MenuItem) error {
	return r.db.QueryRow(ctx, database.InsertMenuItemSQL,
		item.Name, item.Description, item.Price, item.Category, item.Active,
	).Scan(&item.ID, &item.CreatedAt)
}

// Update overwrites a menu item's fields.
func (r *Repository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.db.Exec(ctx, database.UpdateMenuItemSQL,
		item.Name, item.Description, item.Price, item.Category, item.Active, item.ID)
}

// Delete removes a menu item.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.Exec(ctx, database.DeleteMenuItemSQL, id)
}

// GetByID returns a menu item, or (nil, nil) when it does not exist.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.QueryRow(ctx, database.GetMenuItemByIDSQL, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.Active, &item.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &item, nil
}

// ListAll returns every menu item ordered by category and name.
func (r *Repository) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	return r.list(ctx, database.ListMenuItemsSQL)
}

// ListActive returns the active menu items ordered by category and name.
func (r *Repository) ListActive(ctx context.Context) ([]models.MenuItem, error) {
	return r.list(ctx, database.ListActiveMenuItemsSQL)
}

func (r *Repository) list(ctx context.Context, sql string) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.Active, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
