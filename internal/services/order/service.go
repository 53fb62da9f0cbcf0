package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/messaging"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/services/menu"
)

// Repository is the persistence contract for order aggregates. CreateOrder
// must persist the order and all of its lines atomically; a failed create
// leaves no partial aggregate behind.
type Repository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// EventPublisher publishes order lifecycle events. Publishing is advisory:
// the persisted aggregate is the source of truth and publish failures are
// only logged.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, routingKey string, event messaging.OrderEvent) error
}

// Service places and tracks orders. Prices are snapshotted from the
// catalog at submission time; an order is never repriced afterwards.
type Service struct {
	repo      Repository
	catalog   menu.Reader
	publisher EventPublisher
	logger    *logger.Logger
}

// NewService creates a new order service. The publisher may be nil, in
// which case no events are emitted.
func NewService(repo Repository, catalog menu.Reader, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		logger:    log,
	}
}

// Submit validates a new order against the current catalog, prices it,
// and persists the aggregate. Validation is fail-fast: the first missing
// or inactive menu item aborts the submission and nothing is persisted.
func (s *Service) Submit(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, &InvalidRequestError{Message: "order must contain at least one item"}
	}
	if req.TableNumber < 1 {
		return nil, &InvalidRequestError{Message: "table number is required"}
	}

	ids := make([]int64, 0, len(req.Items))
	seen := make(map[int64]struct{}, len(req.Items))
	for _, item := range req.Items {
		if _, ok := seen[item.MenuItemID]; ok {
			continue
		}
		seen[item.MenuItemID] = struct{}{}
		ids = append(ids, item.MenuItemID)
	}

	catalog, err := s.catalog.LookupMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup menu items: %w", err)
	}

	order := &models.Order{
		TableNumber: req.TableNumber,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      models.StatusPending,
		CreatedAt:   time.Now().UTC(),
		Lines:       make([]models.OrderLine, 0, len(req.Items)),
	}

	total := decimal.Zero
	for _, item := range req.Items {
		entry, ok := catalog[item.MenuItemID]
		if !ok || !entry.Available {
			return nil, &ItemUnavailableError{MenuItemID: item.MenuItemID}
		}

		// Price × integer quantity is exact in decimal arithmetic.
		lineTotal := entry.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)

		order.Lines = append(order.Lines, models.OrderLine{
			MenuItemID: item.MenuItemID,
			Name:       entry.Name,
			UnitPrice:  entry.UnitPrice,
			Quantity:   item.Quantity,
		})
	}
	order.TotalAmount = total

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	s.publishEvent(ctx, messaging.OrderCreatedKey, order)

	return order, nil
}

// Get returns an order with its lines.
func (s *Service) Get(ctx context.Context, id int64) (*models.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

// SetStatus overwrites an order's status and returns the updated order.
// The catalog is not consulted and the total is not recomputed; status is
// the only field that changes.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, messaging.OrderStatusChangedKey, order)

	return order, nil
}

// List returns all orders, newest first, for the admin view.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *Service) publishEvent(ctx context.Context, routingKey string, order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := messaging.OrderEvent{
		EventType:   routingKey,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.publisher.PublishOrderEvent(ctx, routingKey, event); err != nil {
		s.logger.Error("event_publish_failed",
			fmt.Sprintf("Failed to publish %s event", routingKey),
			"", err, map[string]interface{}{
				"order_id": order.ID,
			})
	}
}
