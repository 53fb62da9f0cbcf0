package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. PENDING is the only status the order service assigns
// itself; administrators move orders through the remaining labels, and
// the status column accepts arbitrary strings beyond these.
const (
	StatusCreated   = "CREATED"
	StatusPending   = "PENDING"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// OrderLine is a frozen snapshot of one menu item at order time. Name and
// unit price are copied from the catalog when the order is placed and are
// never updated afterwards, so later menu edits cannot change what a
// customer was billed.
type OrderLine struct {
	MenuItemID int64           `json:"menu_item_id" db:"menu_item_id"`
	Name       string          `json:"name" db:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price" db:"unit_price"`
	Quantity   int             `json:"quantity" db:"quantity"`
}

// Order is the aggregate root for a customer order. Lines are created
// together with the order and never modified; status is the only field
// mutated after creation.
type Order struct {
	ID          int64           `json:"id" db:"id"`
	TableNumber int             `json:"table_number" db:"table_number"`
	Email       *string         `json:"email,omitempty" db:"email"`
	Phone       *string         `json:"phone,omitempty" db:"phone"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	Lines       []OrderLine     `json:"items"`
}

// CreateOrderLine references a menu item and a quantity in an incoming
// order request. Prices are never taken from the client.
type CreateOrderLine struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

// CreateOrderRequest is the request to place a new order.
type CreateOrderRequest struct {
	TableNumber int               `json:"table_number"`
	Email       *string           `json:"email,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Items       []CreateOrderLine `json:"items"`
}

// Validate checks the transport-level constraints of an order request.
// The order service re-checks the request-shape conditions it owns
// (non-empty items, table number); per-line quantity and item id bounds
// are enforced here, before the request reaches the service.
func (req *CreateOrderRequest) Validate() error {
	if len(req.Items) > 50 {
		return fmt.Errorf("items array cannot contain more than 50 items")
	}

	for i, item := range req.Items {
		if item.MenuItemID < 1 {
			return fmt.Errorf("items[%d].menu_item_id is required", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("items[%d].quantity must be at least 1", i)
		}
		if item.Quantity > 100 {
			return fmt.Errorf("items[%d].quantity must not exceed 100", i)
		}
	}

	if req.Email != nil && len(*req.Email) > 255 {
		return fmt.Errorf("email must not exceed 255 characters")
	}
	if req.Phone != nil && len(*req.Phone) > 32 {
		return fmt.Errorf("phone must not exceed 32 characters")
	}

	return nil
}

// UpdateStatusRequest is the admin request to overwrite an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that a status value is present. The label itself is
// free-form; the allowed vocabulary is owned by the admin workflow.
func (req *UpdateStatusRequest) Validate() error {
	if req.Status == "" {
		return fmt.Errorf("status is required")
	}
	if len(req.Status) > 64 {
		return fmt.Errorf("status must not exceed 64 characters")
	}
	return nil
}
