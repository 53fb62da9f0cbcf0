package order

import "fmt"

// InvalidRequestError reports a client input defect in an order
// submission. It is terminal; the request must be corrected, not retried.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// ItemUnavailableError reports that a referenced menu item does not exist
// or is not currently available. The first offending item aborts the
// whole submission.
type ItemUnavailableError struct {
	MenuItemID int64
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu item not available: %d", e.MenuItemID)
}

// NotFoundError reports an unknown order identifier.
type NotFoundError struct {
	OrderID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order not found: %d", e.OrderID)
}
