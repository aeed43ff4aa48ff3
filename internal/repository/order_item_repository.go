package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	FindByID(ctx context.Context, orderItemID int64) (model.OrderItem, error)
	UpdateQuantity(ctx context.Context, orderItemID int64, qty int64) error
	DeleteByID(ctx context.Context, orderItemID int64) error

	// 明細がそのユーザーの注文に属しているかを判定
	IsOwnedByUser(ctx context.Context, orderItemID int64, userID int64) (bool, error)
}
