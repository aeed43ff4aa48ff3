package usecase_test

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) GetOrCreateOpenByUserID(ctx context.Context, userID int64) (model.Order, error) {
	args := m.Called(ctx, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListOpenByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Update(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) FindByID(ctx context.Context, orderItemID int64) (model.OrderItem, error) {
	args := m.Called(ctx, orderItemID)
	item, _ := args.Get(0).(model.OrderItem)
	return item, args.Error(1)
}

func (m *OrderItemRepoMock) UpdateQuantity(ctx context.Context, orderItemID int64, qty int64) error {
	args := m.Called(ctx, orderItemID, qty)
	return args.Error(0)
}

func (m *OrderItemRepoMock) DeleteByID(ctx context.Context, orderItemID int64) error {
	args := m.Called(ctx, orderItemID)
	return args.Error(0)
}

func (m *OrderItemRepoMock) IsOwnedByUser(ctx context.Context, orderItemID int64, userID int64) (bool, error) {
	args := m.Called(ctx, orderItemID, userID)
	return args.Bool(0), args.Error(1)
}

type FoodItemRepoMock struct{ mock.Mock }

func (m *FoodItemRepoMock) List(ctx context.Context) ([]model.FoodItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.FoodItem)
	return items, args.Error(1)
}

func (m *FoodItemRepoMock) FindByID(ctx context.Context, id int64) (model.FoodItem, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(model.FoodItem)
	return f, args.Error(1)
}

func (m *FoodItemRepoMock) Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error) {
	args := m.Called(ctx, f)
	created, _ := args.Get(0).(model.FoodItem)
	return created, args.Error(1)
}

func (m *FoodItemRepoMock) Update(ctx context.Context, f model.FoodItem) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FoodItemRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AddressRepoMock struct{ mock.Mock }

func (m *AddressRepoMock) Create(ctx context.Context, address model.Address) (model.Address, error) {
	args := m.Called(ctx, address)
	a, _ := args.Get(0).(model.Address)
	return a, args.Error(1)
}

func (m *AddressRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]model.Address)
	return list, args.Error(1)
}

func (m *AddressRepoMock) FindByID(ctx context.Context, addressID int64) (model.Address, error) {
	args := m.Called(ctx, addressID)
	a, _ := args.Get(0).(model.Address)
	return a, args.Error(1)
}

func (m *AddressRepoMock) Update(ctx context.Context, address model.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *AddressRepoMock) Delete(ctx context.Context, addressID int64) error {
	args := m.Called(ctx, addressID)
	return args.Error(0)
}

func (m *AddressRepoMock) IsOwnedByUser(ctx context.Context, addressID, userID int64) (bool, error) {
	args := m.Called(ctx, addressID, userID)
	return args.Bool(0), args.Error(1)
}

// txManagerStub runs the callback against the same mocks, so a test
// sees every repo call made inside the transaction.
type txReposStub struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	foodItems  repo.FoodItemRepository
}

func (r *txReposStub) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposStub) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposStub) FoodItems() repo.FoodItemRepository   { return r.foodItems }

type txManagerStub struct {
	repos *txReposStub
}

func (tm *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(tm.repos)
}

func newOrderUsecase(orders *OrderRepoMock, items *OrderItemRepoMock, foods *FoodItemRepoMock, addrs *AddressRepoMock) *usecase.OrderUsecase {
	tm := &txManagerStub{repos: &txReposStub{orders: orders, orderItems: items, foodItems: foods}}
	return usecase.NewOrderUsecase(tm, orders, items, foods, addrs)
}

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	assert.Error(t, err)
	if err != nil {
		assert.True(t, strings.Contains(err.Error(), want), "error %q should contain %q", err.Error(), want)
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptrInt64(v int64) *int64 { return &v }

// =====================
// AddToCart
// =====================

func TestOrderUsecase_AddToCart_CreatesOpenOrderWhenMissing(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	foods := new(FoodItemRepoMock)
	uc := newOrderUsecase(orders, items, foods, new(AddressRepoMock))

	cart := model.Order{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced, PaymentMethod: model.PaymentMethodCash}
	orders.On("GetOrCreateOpenByUserID", mock.Anything, int64(1)).Return(cart, nil)

	foods.On("FindByID", mock.Anything, int64(3)).Return(model.FoodItem{ID: 3, Name: "Pizza", Price: price("30.00")}, nil)

	items.On("CreateBulk", mock.Anything, int64(10), mock.MatchedBy(func(lines []model.OrderItem) bool {
		return len(lines) == 1 && *lines[0].FoodItemID == 3 && lines[0].Quantity == 2
	})).Return(nil)

	items.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{
		{ID: 100, OrderID: 10, FoodItemID: ptrInt64(3), Quantity: 2},
	}, nil)

	out, err := uc.AddToCart(ctx, 1, usecase.CreateOrderInput{
		Items: []usecase.AddOrderItemInput{{FoodItem: 3, Quantity: ptrInt64(2)}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "NOT_PLACED", out.Status)
	assert.Equal(t, "CASH", out.PaymentMethod)
	assert.Equal(t, int64(2), out.TotalItems)
	assert.Equal(t, "60.00", out.TotalPrice)
	assert.Equal(t, 1, len(out.OrderItems))

	orders.AssertExpectations(t)
	items.AssertExpectations(t)
}

func TestOrderUsecase_AddToCart_ReusesExistingOpenOrder(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	foods := new(FoodItemRepoMock)
	uc := newOrderUsecase(orders, items, foods, new(AddressRepoMock))

	// the repo hands back the already existing cart, id 7
	cart := model.Order{ID: 7, UserID: 1, Status: model.OrderStatusNotPlaced, PaymentMethod: model.PaymentMethodCash}
	orders.On("GetOrCreateOpenByUserID", mock.Anything, int64(1)).Return(cart, nil)

	foods.On("FindByID", mock.Anything, int64(5)).Return(model.FoodItem{ID: 5, Price: price("10.00")}, nil)

	items.On("CreateBulk", mock.Anything, int64(7), mock.Anything).Return(nil)
	items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{
		{ID: 1, OrderID: 7, FoodItemID: ptrInt64(5), Quantity: 1},
		{ID: 2, OrderID: 7, FoodItemID: ptrInt64(5), Quantity: 1},
	}, nil)

	out, err := uc.AddToCart(ctx, 1, usecase.CreateOrderInput{
		Items: []usecase.AddOrderItemInput{{FoodItem: 5}},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	// duplicate lines stay distinct, they are not merged
	assert.Equal(t, 2, len(out.OrderItems))
	assert.Equal(t, "20.00", out.TotalPrice)

	orders.AssertExpectations(t)
}

func TestOrderUsecase_AddToCart_DefaultQuantityIsOne(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	foods := new(FoodItemRepoMock)
	uc := newOrderUsecase(orders, items, foods, new(AddressRepoMock))

	cart := model.Order{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced}
	orders.On("GetOrCreateOpenByUserID", mock.Anything, int64(1)).Return(cart, nil)
	foods.On("FindByID", mock.Anything, int64(3)).Return(model.FoodItem{ID: 3, Price: price("5.00")}, nil)

	items.On("CreateBulk", mock.Anything, int64(10), mock.MatchedBy(func(lines []model.OrderItem) bool {
		return len(lines) == 1 && lines[0].Quantity == 1
	})).Return(nil)
	items.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{
		{ID: 1, OrderID: 10, FoodItemID: ptrInt64(3), Quantity: 1},
	}, nil)

	_, err := uc.AddToCart(ctx, 1, usecase.CreateOrderInput{
		Items: []usecase.AddOrderItemInput{{FoodItem: 3}},
	})

	assert.NoError(t, err)
	items.AssertExpectations(t)
}

func TestOrderUsecase_AddToCart_UnknownFoodItemFailsWholeBatch(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	foods := new(FoodItemRepoMock)
	uc := newOrderUsecase(orders, items, foods, new(AddressRepoMock))

	cart := model.Order{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced}
	orders.On("GetOrCreateOpenByUserID", mock.Anything, int64(1)).Return(cart, nil)

	foods.On("FindByID", mock.Anything, int64(3)).Return(model.FoodItem{ID: 3, Price: price("5.00")}, nil)
	foods.On("FindByID", mock.Anything, int64(99)).Return(model.FoodItem{}, repo.ErrNotFound)

	_, err := uc.AddToCart(ctx, 1, usecase.CreateOrderInput{
		Items: []usecase.AddOrderItemInput{{FoodItem: 3}, {FoodItem: 99}},
	})

	assertErrContains(t, err, "food item does not exist.")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)

	// nothing was written
	items.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_AddToCart_InvalidQuantity(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	uc := newOrderUsecase(orders, items, new(FoodItemRepoMock), new(AddressRepoMock))

	_, err := uc.AddToCart(ctx, 1, usecase.CreateOrderInput{
		Items: []usecase.AddOrderItemInput{{FoodItem: 3, Quantity: ptrInt64(0)}},
	})

	assertErrContains(t, err, "invalid quantity")
	orders.AssertNotCalled(t, "GetOrCreateOpenByUserID", mock.Anything, mock.Anything)
}

// =====================
// Views and totals
// =====================

func TestOrderUsecase_GetDetail_Totals(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	foods := new(FoodItemRepoMock)
	uc := newOrderUsecase(orders, items, foods, new(AddressRepoMock))

	orders.On("FindByID", mock.Anything, int64(10)).Return(
		model.Order{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced, PaymentMethod: model.PaymentMethodCash}, nil)

	items.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{
		{ID: 1, OrderID: 10, FoodItemID: ptrInt64(3), Quantity: 2},
		{ID: 2, OrderID: 10, FoodItemID: ptrInt64(4), Quantity: 1},
	}, nil)

	foods.On("FindByID", mock.Anything, int64(3)).Return(model.FoodItem{ID: 3, Name: "Pizza", Price: price("30.00")}, nil)
	foods.On("FindByID", mock.Anything, int64(4)).Return(model.FoodItem{ID: 4, Name: "Juice", Price: price("14.50")}, nil)

	out, err := uc.GetDetail(ctx, 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, "74.50", out.TotalPrice)
	assert.Equal(t, int64(3), out.TotalItems)
	assert.Equal(t, 2, len(out.OrderItems))
	assert.Equal(t, "Pizza", out.OrderItems[0].FoodItem.Name)
	assert.Equal(t, "30.00", out.OrderItems[0].FoodItem.Price)
}

func TestOrderUsecase_GetDetail_DeletedFoodRefIsSkippedInPrice(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	foods := new(FoodItemRepoMock)
	uc := newOrderUsecase(orders, items, foods, new(AddressRepoMock))

	orders.On("FindByID", mock.Anything, int64(10)).Return(
		model.Order{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced}, nil)

	items.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{
		{ID: 1, OrderID: 10, FoodItemID: nil, Quantity: 2}, // food item deleted
		{ID: 2, OrderID: 10, FoodItemID: ptrInt64(3), Quantity: 1},
	}, nil)

	foods.On("FindByID", mock.Anything, int64(3)).Return(model.FoodItem{ID: 3, Price: price("30.00")}, nil)

	out, err := uc.GetDetail(ctx, 1, 10)

	assert.NoError(t, err)
	// the orphaned line still counts items but not price
	assert.Equal(t, "30.00", out.TotalPrice)
	assert.Equal(t, int64(3), out.TotalItems)
	assert.Nil(t, out.OrderItems[0].FoodItem)
}

func TestOrderUsecase_GetDetail_OtherUsersOrderIsNotFound(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	uc := newOrderUsecase(orders, new(OrderItemRepoMock), new(FoodItemRepoMock), new(AddressRepoMock))

	orders.On("FindByID", mock.Anything, int64(10)).Return(
		model.Order{ID: 10, UserID: 2, Status: model.OrderStatusNotPlaced}, nil)

	_, err := uc.GetDetail(ctx, 1, 10)

	assertErrContains(t, err, "not found")
	he, _ := usecase.AsHTTPError(err)
	assert.Equal(t, 404, he.Status)
}

func TestOrderUsecase_GetDetail_PlacedOrderIsOutOfScope(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	uc := newOrderUsecase(orders, new(OrderItemRepoMock), new(FoodItemRepoMock), new(AddressRepoMock))

	// the order views only see the open cart
	orders.On("FindByID", mock.Anything, int64(10)).Return(
		model.Order{ID: 10, UserID: 1, Status: model.OrderStatusPending}, nil)

	_, err := uc.GetDetail(ctx, 1, 10)
	assertErrContains(t, err, "not found")
}

func TestOrderUsecase_ListCart_OnlyQueriesOwnOpenOrders(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	uc := newOrderUsecase(orders, items, new(FoodItemRepoMock), new(AddressRepoMock))

	orders.On("ListOpenByUserID", mock.Anything, int64(1)).Return([]model.Order{
		{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced},
	}, nil)
	items.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{}, nil)

	out, err := uc.ListCart(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, "0.00", out[0].TotalPrice)
	orders.AssertExpectations(t)
}

func TestOrderUsecase_History_ReturnsAllOwnStatuses(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	uc := newOrderUsecase(orders, items, new(FoodItemRepoMock), new(AddressRepoMock))

	orders.On("ListByUserID", mock.Anything, int64(1)).Return([]model.Order{
		{ID: 12, UserID: 1, Status: model.OrderStatusDelivered},
		{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced},
	}, nil)
	items.On("ListByOrderID", mock.Anything, mock.Anything).Return([]model.OrderItem{}, nil)

	out, err := uc.History(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, len(out))
	assert.Equal(t, "DELIVERED", out[0].Status)
}

// =====================
// Update / Delete
// =====================

func TestOrderUsecase_Update_PlacesTheCart(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	uc := newOrderUsecase(orders, items, new(FoodItemRepoMock), new(AddressRepoMock))

	orders.On("FindByID", mock.Anything, int64(10)).Return(
		model.Order{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced, PaymentMethod: model.PaymentMethodCash}, nil)

	orders.On("Update", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.ID == 10 && o.Status == model.OrderStatusPending
	})).Return(nil)

	items.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{}, nil)

	status := "PENDING"
	out, err := uc.Update(ctx, 1, 10, usecase.UpdateOrderInput{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, "PENDING", out.Status)
	orders.AssertExpectations(t)
}

func TestOrderUsecase_Update_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	uc := newOrderUsecase(orders, new(OrderItemRepoMock), new(FoodItemRepoMock), new(AddressRepoMock))

	orders.On("FindByID", mock.Anything, int64(10)).Return(
		model.Order{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced}, nil)

	status := "SHIPPED"
	_, err := uc.Update(ctx, 1, 10, usecase.UpdateOrderInput{Status: &status})

	assertErrContains(t, err, "invalid status")
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderUsecase_Update_RejectsForeignDeliveryAddress(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	addrs := new(AddressRepoMock)
	uc := newOrderUsecase(orders, new(OrderItemRepoMock), new(FoodItemRepoMock), addrs)

	orders.On("FindByID", mock.Anything, int64(10)).Return(
		model.Order{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced}, nil)
	addrs.On("IsOwnedByUser", mock.Anything, int64(44), int64(1)).Return(false, nil)

	addrID := int64(44)
	_, err := uc.Update(ctx, 1, 10, usecase.UpdateOrderInput{
		DeliveryAddressSet: true,
		DeliveryAddress:    &addrID,
	})

	assertErrContains(t, err, "invalid delivery_address")
}

func TestOrderUsecase_Delete_CascadesLines(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	uc := newOrderUsecase(orders, new(OrderItemRepoMock), new(FoodItemRepoMock), new(AddressRepoMock))

	orders.On("FindByID", mock.Anything, int64(10)).Return(
		model.Order{ID: 10, UserID: 1, Status: model.OrderStatusNotPlaced}, nil)
	orders.On("Delete", mock.Anything, int64(10)).Return(nil)

	err := uc.Delete(ctx, 1, 10)

	assert.NoError(t, err)
	orders.AssertExpectations(t)
}

// =====================
// Line items
// =====================

func TestOrderUsecase_UpdateItem_Success(t *testing.T) {
	ctx := context.Background()

	items := new(OrderItemRepoMock)
	uc := newOrderUsecase(new(OrderRepoMock), items, new(FoodItemRepoMock), new(AddressRepoMock))

	items.On("IsOwnedByUser", mock.Anything, int64(100), int64(1)).Return(true, nil)
	items.On("UpdateQuantity", mock.Anything, int64(100), int64(5)).Return(nil)
	items.On("FindByID", mock.Anything, int64(100)).Return(
		model.OrderItem{ID: 100, OrderID: 10, FoodItemID: ptrInt64(3), Quantity: 5}, nil)

	out, err := uc.UpdateItem(ctx, 1, 100, usecase.UpdateOrderItemInput{Quantity: 5})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.Quantity)
	assert.Equal(t, int64(3), *out.FoodItem)
	items.AssertExpectations(t)
}

func TestOrderUsecase_UpdateItem_NotOwnedIsNotFound(t *testing.T) {
	ctx := context.Background()

	items := new(OrderItemRepoMock)
	uc := newOrderUsecase(new(OrderRepoMock), items, new(FoodItemRepoMock), new(AddressRepoMock))

	items.On("IsOwnedByUser", mock.Anything, int64(100), int64(1)).Return(false, nil)

	_, err := uc.UpdateItem(ctx, 1, 100, usecase.UpdateOrderItemInput{Quantity: 5})

	assertErrContains(t, err, "not found")
	items.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_DeleteItem_NotOwnedIsNotFound(t *testing.T) {
	ctx := context.Background()

	items := new(OrderItemRepoMock)
	uc := newOrderUsecase(new(OrderRepoMock), items, new(FoodItemRepoMock), new(AddressRepoMock))

	items.On("IsOwnedByUser", mock.Anything, int64(100), int64(1)).Return(false, nil)

	err := uc.DeleteItem(ctx, 1, 100)

	assertErrContains(t, err, "not found")
	items.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}
