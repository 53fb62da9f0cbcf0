package menu

import (
	"context"
	"fmt"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
)

// NotFoundError reports an unknown menu item identifier.
type NotFoundError struct {
	MenuItemID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("menu item not found: %d", e.MenuItemID)
}

// Store is the persistence contract the menu service depends on.
type Store interface {
	Insert(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	ListAll(ctx context.Context) ([]models.MenuItem, error)
	ListActive(ctx context.Context) ([]models.MenuItem, error)
}

// Service manages the menu catalog.
type Service struct {
	store  Store
	logger *logger.Logger
}

// NewService creates a new menu service.
func NewService(store Store, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: log,
	}
}

// Create adds a new menu item. Active defaults to true when not given.
func (s *Service) Create(ctx context.Context, req *models.MenuItemRequest) (*models.MenuItem, error) {
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    *req.Category,
		Active:      true,
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := s.store.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return item, nil
}

// Update applies the non-nil fields of the request to an existing item.
func (s *Service) Update(ctx context.Context, id int64, req *models.MenuItemRequest) (*models.MenuItem, error) {
	if err := req.ValidateUpdate(); err != nil {
		return nil, err
	}

	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := s.store.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return item, nil
}

// Delete removes a menu item. Existing order lines keep their snapshots.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

// Toggle flips a menu item's availability flag.
func (s *Service) Toggle(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Active = !item.Active
	if err := s.store.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("toggle menu item: %w", err)
	}
	return item, nil
}

// GetByID returns a single menu item.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &NotFoundError{MenuItemID: id}
	}
	return item, nil
}

// ListAll returns every menu item for the admin view.
func (s *Service) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.ListAll(ctx)
}

// ListActive returns the customer-facing menu.
func (s *Service) ListActive(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.ListActive(ctx)
}
