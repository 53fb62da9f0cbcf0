package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"restaurant-backend/internal/database"
	"restaurant-backend/internal/models"
)

// Repository provides PostgreSQL persistence for admin accounts.
type Repository struct {
	db *database.DB
}

// NewRepository creates a new admin repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// GetByUsername returns an admin account, or (nil, nil) when the
// username is unknown.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx, database.GetAdminByUsernameSQL, username).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash,
		&admin.FullName, &admin.Email, &admin.Role, &admin.Active,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &admin, nil
}
