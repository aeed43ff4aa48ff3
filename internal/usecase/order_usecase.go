package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderUsecase は /orders と /order-items の業務ロジック。
type OrderUsecase struct {
	tx            repo.TransactionManager
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
	foodItemRepo  repo.FoodItemRepository
	addressRepo   repo.AddressRepository
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orderRepo repo.OrderRepository,
	orderItemRepo repo.OrderItemRepository,
	foodItemRepo repo.FoodItemRepository,
	addressRepo repo.AddressRepository,
) *OrderUsecase {
	return &OrderUsecase{
		tx:            tx,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		foodItemRepo:  foodItemRepo,
		addressRepo:   addressRepo,
	}
}

// OrderItemRef is a line with the food item as a bare reference,
// used in the create response.
type OrderItemRef struct {
	ID       int64  `json:"id"`
	FoodItem *int64 `json:"food_item"`
	Quantity int64  `json:"quantity"`
}

// OrderItemDetail embeds the full food item record; nil when the item
// was deleted after it was ordered.
type OrderItemDetail struct {
	ID       int64        `json:"id"`
	FoodItem *FoodItemDTO `json:"food_item"`
	Quantity int64        `json:"quantity"`
}

type OrderOutput struct {
	ID              int64          `json:"id"`
	OrderItems      []OrderItemRef `json:"order_items"`
	Status          string         `json:"status"`
	PaymentMethod   string         `json:"payment_method"`
	TotalPrice      string         `json:"total_price"`
	TotalItems      int64          `json:"total_items"`
	DeliveryAddress *int64         `json:"delivery_address"`
}

type OrderDetailOutput struct {
	ID              int64             `json:"id"`
	OrderItems      []OrderItemDetail `json:"order_items"`
	Status          string            `json:"status"`
	PaymentMethod   string            `json:"payment_method"`
	TotalPrice      string            `json:"total_price"`
	TotalItems      int64             `json:"total_items"`
	DeliveryAddress *int64            `json:"delivery_address"`
}

type AddOrderItemInput struct {
	FoodItem int64
	Quantity *int64 // nil means 1
}

type CreateOrderInput struct {
	Items []AddOrderItemInput
}

type UpdateOrderInput struct {
	Status        *string
	PaymentMethod *string

	// DeliveryAddressSet distinguishes "field absent" from an explicit
	// null, which clears the address.
	DeliveryAddressSet bool
	DeliveryAddress    *int64
}

type UpdateOrderItemInput struct {
	Quantity int64
}

// AddToCart resolves the caller's open cart (creating it when missing)
// and appends one line per pair. The whole batch runs in a single
// transaction: one unknown food item fails the request and nothing is
// written. Repeated pairs append new lines, they are never merged.
func (u *OrderUsecase) AddToCart(ctx context.Context, userID int64, in CreateOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	for _, it := range in.Items {
		if it.Quantity != nil && *it.Quantity < 1 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().GetOrCreateOpenByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		lines := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			if _, err := r.FoodItems().FindByID(ctx, it.FoodItem); err != nil {
				if err == repo.ErrNotFound {
					return NewHTTPError(http.StatusBadRequest, "food item does not exist.")
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			qty := int64(1)
			if it.Quantity != nil {
				qty = *it.Quantity
			}

			foodID := it.FoodItem
			lines = append(lines, model.OrderItem{
				FoodItemID: &foodID,
				Quantity:   qty,
			})
		}

		if err := r.OrderItems().CreateBulk(ctx, order.ID, lines); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// items added in earlier calls belong to the response too
		all, err := r.OrderItems().ListByOrderID(ctx, order.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = u.buildOrderOutput(ctx, r.FoodItems(), order, all)
		return err
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListCart returns the caller's NOT_PLACED orders, newest first. With
// the open-cart invariant held there is at most one.
func (u *OrderUsecase) ListCart(ctx context.Context, userID int64) ([]OrderDetailOutput, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orderRepo.ListOpenByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildDetails(ctx, orders)
}

// History returns every order of the caller, newest first.
func (u *OrderUsecase) History(ctx context.Context, userID int64) ([]OrderDetailOutput, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildDetails(ctx, orders)
}

func (u *OrderUsecase) GetDetail(ctx context.Context, userID int64, orderID int64) (OrderDetailOutput, error) {
	if userID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	order, err := u.findScoped(ctx, userID, orderID)
	if err != nil {
		return OrderDetailOutput{}, err
	}

	return u.buildDetail(ctx, order)
}

// Update mutates the open cart: status (placing the order is a PATCH to
// PENDING), payment method, delivery address. Transition legality is
// deliberately not checked.
func (u *OrderUsecase) Update(ctx context.Context, userID int64, orderID int64, in UpdateOrderInput) (OrderDetailOutput, error) {
	if userID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	order, err := u.findScoped(ctx, userID, orderID)
	if err != nil {
		return OrderDetailOutput{}, err
	}

	if in.Status != nil {
		status := model.OrderStatus(*in.Status)
		if !status.Valid() {
			return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		order.Status = status
	}

	if in.PaymentMethod != nil {
		method := model.PaymentMethod(*in.PaymentMethod)
		if !method.Valid() {
			return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
		}
		order.PaymentMethod = method
	}

	if in.DeliveryAddressSet {
		if in.DeliveryAddress == nil {
			order.DeliveryAddressID = nil
		} else {
			owned, err := u.addressRepo.IsOwnedByUser(ctx, *in.DeliveryAddress, userID)
			if err != nil {
				return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !owned {
				return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid delivery_address")
			}
			order.DeliveryAddressID = in.DeliveryAddress
		}
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		if err == repo.ErrNotFound {
			return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildDetail(ctx, order)
}

// Delete removes the open cart and its lines.
func (u *OrderUsecase) Delete(ctx context.Context, userID int64, orderID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	order, err := u.findScoped(ctx, userID, orderID)
	if err != nil {
		return err
	}

	if err := u.orderRepo.Delete(ctx, order.ID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// UpdateItem changes a line's quantity. The line must belong to one of
// the caller's orders; anything else reads as not found.
func (u *OrderUsecase) UpdateItem(ctx context.Context, userID int64, orderItemID int64, in UpdateOrderItemInput) (OrderItemRef, error) {
	if userID <= 0 {
		return OrderItemRef{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.Quantity < 1 {
		return OrderItemRef{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	owned, err := u.orderItemRepo.IsOwnedByUser(ctx, orderItemID, userID)
	if err != nil {
		return OrderItemRef{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return OrderItemRef{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.orderItemRepo.UpdateQuantity(ctx, orderItemID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return OrderItemRef{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return OrderItemRef{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.orderItemRepo.FindByID(ctx, orderItemID)
	if err != nil {
		return OrderItemRef{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderItemRef{ID: item.ID, FoodItem: item.FoodItemID, Quantity: item.Quantity}, nil
}

func (u *OrderUsecase) DeleteItem(ctx context.Context, userID int64, orderItemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	owned, err := u.orderItemRepo.IsOwnedByUser(ctx, orderItemID, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.orderItemRepo.DeleteByID(ctx, orderItemID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// findScoped resolves an order the way the order views see them: the
// caller's own, still in NOT_PLACED. Everything else is a 404.
func (u *OrderUsecase) findScoped(ctx context.Context, userID int64, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if order.UserID != userID || order.Status != model.OrderStatusNotPlaced {
		// 他人の注文は「存在しない扱い」にする
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return order, nil
}

// totals aggregates the derived fields. total_price skips lines whose
// food item was deleted; total_items counts every line's quantity.
func totals(lines []model.OrderItem, foods map[int64]model.FoodItem) (string, int64) {
	totalPrice := decimal.Zero
	var totalItems int64

	for _, line := range lines {
		totalItems += line.Quantity

		if line.FoodItemID == nil {
			continue
		}
		f, ok := foods[*line.FoodItemID]
		if !ok {
			continue
		}
		totalPrice = totalPrice.Add(f.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}

	return totalPrice.StringFixed(2), totalItems
}

// resolveFoods loads the food item for each referenced line; missing
// rows are simply absent from the map.
func resolveFoods(ctx context.Context, foodItems repo.FoodItemRepository, lines []model.OrderItem) (map[int64]model.FoodItem, error) {
	foods := make(map[int64]model.FoodItem)

	for _, line := range lines {
		if line.FoodItemID == nil {
			continue
		}
		id := *line.FoodItemID
		if _, ok := foods[id]; ok {
			continue
		}

		f, err := foodItems.FindByID(ctx, id)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		foods[id] = f
	}

	return foods, nil
}

func (u *OrderUsecase) buildOrderOutput(ctx context.Context, foodItems repo.FoodItemRepository, order model.Order, lines []model.OrderItem) (OrderOutput, error) {
	foods, err := resolveFoods(ctx, foodItems, lines)
	if err != nil {
		return OrderOutput{}, err
	}

	refs := make([]OrderItemRef, 0, len(lines))
	for _, line := range lines {
		refs = append(refs, OrderItemRef{
			ID:       line.ID,
			FoodItem: line.FoodItemID,
			Quantity: line.Quantity,
		})
	}

	totalPrice, totalItems := totals(lines, foods)

	return OrderOutput{
		ID:              order.ID,
		OrderItems:      refs,
		Status:          string(order.Status),
		PaymentMethod:   string(order.PaymentMethod),
		TotalPrice:      totalPrice,
		TotalItems:      totalItems,
		DeliveryAddress: order.DeliveryAddressID,
	}, nil
}

func (u *OrderUsecase) buildDetail(ctx context.Context, order model.Order) (OrderDetailOutput, error) {
	lines, err := u.orderItemRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	foods, err := resolveFoods(ctx, u.foodItemRepo, lines)
	if err != nil {
		return OrderDetailOutput{}, err
	}

	details := make([]OrderItemDetail, 0, len(lines))
	for _, line := range lines {
		d := OrderItemDetail{ID: line.ID, Quantity: line.Quantity}
		if line.FoodItemID != nil {
			if f, ok := foods[*line.FoodItemID]; ok {
				dto := toFoodItemDTO(f)
				d.FoodItem = &dto
			}
		}
		details = append(details, d)
	}

	totalPrice, totalItems := totals(lines, foods)

	return OrderDetailOutput{
		ID:              order.ID,
		OrderItems:      details,
		Status:          string(order.Status),
		PaymentMethod:   string(order.PaymentMethod),
		TotalPrice:      totalPrice,
		TotalItems:      totalItems,
		DeliveryAddress: order.DeliveryAddressID,
	}, nil
}

func (u *OrderUsecase) buildDetails(ctx context.Context, orders []model.Order) ([]OrderDetailOutput, error) {
	outs := make([]OrderDetailOutput, 0, len(orders))
	for _, o := range orders {
		d, err := u.buildDetail(ctx, o)
		if err != nil {
			return nil, err
		}
		outs = append(outs, d)
	}
	return outs, nil
}
