package menu

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
)

// fakeStore is an in-memory menu store.
type fakeStore struct {
	nextID int64
	items  map[int64]models.MenuItem
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[int64]models.MenuItem)}
}

func (f *fakeStore) Insert(ctx context.Context, item *models.MenuItem) error {
	f.nextID++
	item.ID = f.nextID
	f.items[item.ID] = *item
	return nil
}

func (f *fakeStore) Update(ctx context.Context, item *models.MenuItem) error {
	f.items[item.ID] = *item
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeStore) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeStore) ListActive(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range f.items {
		if item.Active {
			items = append(items, item)
		}
	}
	return items, nil
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestService(store Store) *Service {
	return NewService(store, logger.New("menu-service-test"))
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc := newTestService(newFakeStore())

	item, err := svc.Create(context.Background(), &models.MenuItemRequest{
		Name:     strPtr("Margherita"),
		Price:    decPtr("9.50"),
		Category: strPtr("pizza"),
	})
	require.NoError(t, err)

	assert.True(t, item.Active)
	assert.NotZero(t, item.ID)
	assert.True(t, decimal.RequireFromString("9.50").Equal(item.Price))
}

func TestCreateRequiresFields(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.Create(context.Background(), &models.MenuItemRequest{
		Name: strPtr("Margherita"),
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), &models.MenuItemRequest{
		Name:     strPtr("Margherita"),
		Price:    decPtr("-1.00"),
		Category: strPtr("pizza"),
	})
	assert.Error(t, err)
}

func TestUpdateKeepsUnsetFields(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, err := svc.Create(context.Background(), &models.MenuItemRequest{
		Name:     strPtr("Margherita"),
		Price:    decPtr("9.50"),
		Category: strPtr("pizza"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &models.MenuItemRequest{
		Price: decPtr("10.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Margherita", updated.Name)
	assert.Equal(t, "pizza", updated.Category)
	assert.True(t, decimal.RequireFromString("10.00").Equal(updated.Price))
}

func TestToggleFlipsAvailability(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, err := svc.Create(context.Background(), &models.MenuItemRequest{
		Name:     strPtr("Tiramisu"),
		Price:    decPtr("4.25"),
		Category: strPtr("dessert"),
		Active:   boolPtr(true),
	})
	require.NoError(t, err)

	toggled, err := svc.Toggle(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	toggled, err = svc.Toggle(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Active)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.GetByID(context.Background(), 42)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.MenuItemID)
}

func TestDeleteNotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	err := svc.Delete(context.Background(), 42)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
