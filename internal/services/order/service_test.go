package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/services/menu"
)

// fakeCatalog is an in-memory menu.Reader.
type fakeCatalog struct {
	entries map[int64]menu.CatalogEntry
}

func (f *fakeCatalog) LookupMany(ctx context.Context, ids []int64) (map[int64]menu.CatalogEntry, error) {
	result := make(map[int64]menu.CatalogEntry, len(ids))
	for _, id := range ids {
		if entry, ok := f.entries[id]; ok {
			result[id] = entry
		}
	}
	return result, nil
}

// fakeRepo is an in-memory order store.
type fakeRepo struct {
	nextID    int64
	orders    map[int64]models.Order
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: make(map[int64]models.Order)}
}

func (f *fakeRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	order.ID = f.nextID

	stored := *order
	stored.Lines = append([]models.OrderLine(nil), order.Lines...)
	f.orders[order.ID] = stored
	return nil
}

func (f *fakeRepo) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	stored, ok := f.orders[id]
	if !ok {
		return nil, &NotFoundError{OrderID: id}
	}
	copied := stored
	copied.Lines = append([]models.OrderLine(nil), stored.Lines...)
	return &copied, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	stored, ok := f.orders[id]
	if !ok {
		return &NotFoundError{OrderID: id}
	}
	stored.Status = status
	f.orders[id] = stored
	return nil
}

func (f *fakeRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	for _, stored := range f.orders {
		orders = append(orders, stored)
	}
	return orders, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(repo Repository, catalog menu.Reader) *Service {
	return NewService(repo, catalog, nil, logger.New("order-service-test"))
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{entries: map[int64]menu.CatalogEntry{
		1: {Name: "Margherita", UnitPrice: price("9.50"), Available: true},
		2: {Name: "Tiramisu", UnitPrice: price("4.25"), Available: false},
		3: {Name: "Espresso", UnitPrice: price("0.10"), Available: true},
		4: {Name: "Biscotti", UnitPrice: price("0.20"), Available: true},
	}}
}

func TestSubmitSuccess(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, testCatalog())

	order, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 3,
		Items:       []models.CreateOrderLine{{MenuItemID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.True(t, price("19.00").Equal(order.TotalAmount), "total = %s", order.TotalAmount)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Lines, 1)
	assert.Equal(t, int64(1), order.Lines[0].MenuItemID)
	assert.Equal(t, "Margherita", order.Lines[0].Name)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.True(t, price("9.50").Equal(order.Lines[0].UnitPrice))
	assert.NotZero(t, order.ID)
}

func TestSubmitTotalIsExact(t *testing.T) {
	// 0.10 × 3 + 0.20 × 1 drifts under binary floating point; the decimal
	// total must be exactly 0.50.
	repo := newFakeRepo()
	svc := newTestService(repo, testCatalog())

	order, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 1,
		Items: []models.CreateOrderLine{
			{MenuItemID: 3, Quantity: 3},
			{MenuItemID: 4, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, price("0.50").Equal(order.TotalAmount), "total = %s", order.TotalAmount)

	sum := decimal.Zero
	for _, line := range order.Lines {
		sum = sum.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	assert.True(t, sum.Equal(order.TotalAmount))
}

func TestSubmitEmptyItems(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, testCatalog())

	_, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 3,
		Items:       nil,
	})

	var invalidReq *InvalidRequestError
	require.ErrorAs(t, err, &invalidReq)
	assert.Equal(t, "order must contain at least one item", invalidReq.Message)
	assert.Empty(t, repo.orders)
}

func TestSubmitInvalidTableNumber(t *testing.T) {
	tests := []struct {
		name        string
		tableNumber int
	}{
		{"zero", 0},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo, testCatalog())

			_, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
				TableNumber: tt.tableNumber,
				Items:       []models.CreateOrderLine{{MenuItemID: 1, Quantity: 1}},
			})

			var invalidReq *InvalidRequestError
			require.ErrorAs(t, err, &invalidReq)
			assert.Equal(t, "table number is required", invalidReq.Message)
			assert.Empty(t, repo.orders)
		})
	}
}

func TestSubmitUnavailableItem(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, testCatalog())

	// One valid and one unavailable item: the whole submission fails and
	// nothing is persisted.
	_, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 3,
		Items: []models.CreateOrderLine{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	})

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, int64(2), unavailable.MenuItemID)
	assert.Empty(t, repo.orders)
}

func TestSubmitUnknownItem(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, testCatalog())

	_, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 3,
		Items:       []models.CreateOrderLine{{MenuItemID: 999, Quantity: 1}},
	})

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, int64(999), unavailable.MenuItemID)
	assert.Empty(t, repo.orders)
}

func TestSubmitPersistenceFailureLeavesNoOrder(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("connection reset")
	svc := newTestService(repo, testCatalog())

	_, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 3,
		Items:       []models.CreateOrderLine{{MenuItemID: 1, Quantity: 1}},
	})

	require.Error(t, err)
	assert.Empty(t, repo.orders)
}

func TestPriceSnapshotSurvivesCatalogEdits(t *testing.T) {
	repo := newFakeRepo()
	catalog := testCatalog()
	svc := newTestService(repo, catalog)

	order, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 5,
		Items:       []models.CreateOrderLine{{MenuItemID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	// Raise the catalog price after the order is placed.
	catalog.entries[1] = menu.CatalogEntry{Name: "Margherita", UnitPrice: price("12.00"), Available: true}

	reloaded, err := svc.Get(context.Background(), order.ID)
	require.NoError(t, err)

	assert.True(t, price("9.50").Equal(reloaded.Lines[0].UnitPrice))
	assert.True(t, price("19.00").Equal(reloaded.TotalAmount))
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), testCatalog())

	_, err := svc.Get(context.Background(), 42)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.OrderID)
}

func TestSetStatusChangesOnlyStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, testCatalog())

	order, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 3,
		Items:       []models.CreateOrderLine{{MenuItemID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	updated, err := svc.SetStatus(context.Background(), order.ID, models.StatusReady)
	require.NoError(t, err)

	assert.Equal(t, models.StatusReady, updated.Status)
	assert.True(t, order.TotalAmount.Equal(updated.TotalAmount))
	assert.Equal(t, order.Lines, updated.Lines)
	assert.Equal(t, order.CreatedAt, updated.CreatedAt)
	assert.Equal(t, order.TableNumber, updated.TableNumber)
}

func TestSetStatusAcceptsFreeFormLabels(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, testCatalog())

	order, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 3,
		Items:       []models.CreateOrderLine{{MenuItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.SetStatus(context.Background(), order.ID, "waiting_on_oven_repair")
	require.NoError(t, err)
	assert.Equal(t, "waiting_on_oven_repair", updated.Status)
}

func TestSetStatusNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), testCatalog())

	_, err := svc.SetStatus(context.Background(), 42, models.StatusReady)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSubmitPreservesLineOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, testCatalog())

	order, err := svc.Submit(context.Background(), &models.CreateOrderRequest{
		TableNumber: 2,
		Items: []models.CreateOrderLine{
			{MenuItemID: 4, Quantity: 1},
			{MenuItemID: 1, Quantity: 1},
			{MenuItemID: 3, Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Lines, 3)
	assert.Equal(t, int64(4), order.Lines[0].MenuItemID)
	assert.Equal(t, int64(1), order.Lines[1].MenuItemID)
	assert.Equal(t, int64(3), order.Lines[2].MenuItemID)
}
