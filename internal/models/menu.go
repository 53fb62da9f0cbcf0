package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry. It is owned by menu management; the order
// service only reads it when pricing a new order.
type MenuItem struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description,omitempty" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Category    string          `json:"category" db:"category"`
	Active      bool            `json:"active" db:"active"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// MenuItemRequest carries create/update fields for a menu item. On update,
// nil fields keep their current value.
type MenuItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// ValidateCreate checks the fields required to create a new menu item.
func (req *MenuItemRequest) ValidateCreate() error {
	if req.Name == nil || *req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.Price == nil {
		return fmt.Errorf("price is required")
	}
	if req.Category == nil || *req.Category == "" {
		return fmt.Errorf("category is required")
	}
	return req.ValidateUpdate()
}

// ValidateUpdate checks whichever fields are present.
func (req *MenuItemRequest) ValidateUpdate() error {
	if req.Name != nil && len(*req.Name) > 255 {
		return fmt.Errorf("name must not exceed 255 characters")
	}
	if req.Description != nil && len(*req.Description) > 1000 {
		return fmt.Errorf("description must not exceed 1000 characters")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	if req.Category != nil && len(*req.Category) > 100 {
		return fmt.Errorf("category must not exceed 100 characters")
	}
	return nil
}
