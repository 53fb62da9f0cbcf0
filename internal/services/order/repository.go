package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"restaurant-backend/internal/database"
	"restaurant-backend/internal/models"
)

// PostgresRepository persists order aggregates in PostgreSQL.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a new order repository.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateOrder inserts the order and all of its lines in one transaction.
// Either the whole aggregate becomes visible or none of it does.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, database.InsertOrderSQL,
		order.TableNumber, order.Email, order.Phone,
		order.TotalAmount, order.Status, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, line := range order.Lines {
		_, err = tx.Exec(ctx, database.InsertOrderLineSQL,
			order.ID, line.MenuItemID, line.Name, line.UnitPrice, line.Quantity)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetOrderByID loads an order with its lines in insertion order.
func (r *PostgresRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.QueryRow(ctx, database.GetOrderByIDSQL, id).Scan(
		&order.ID, &order.TableNumber, &order.Email, &order.Phone,
		&order.TotalAmount, &order.Status, &order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{OrderID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	lines, err := r.getLines(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return &order, nil
}

// UpdateStatus overwrites the status of an existing order.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	var updatedID int64
	err := r.db.QueryRow(ctx, database.UpdateOrderStatusSQL, status, id).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return &NotFoundError{OrderID: id}
	}
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// ListOrders returns all orders with their lines, newest first.
func (r *PostgresRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, database.ListOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(
			&order.ID, &order.TableNumber, &order.Email, &order.Phone,
			&order.TotalAmount, &order.Status, &order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, err := r.getLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}

	return orders, nil
}

func (r *PostgresRepository) getLines(ctx context.Context, orderID int64) ([]models.OrderLine, error) {
	rows, err := r.db.Query(ctx, database.GetOrderLinesSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order lines: %w", err)
	}
	defer rows.Close()

	var lines []models.OrderLine
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.MenuItemID, &line.Name, &line.UnitPrice, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}
