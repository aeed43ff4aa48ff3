package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	// GetOrCreateOpenByUserID returns the user's NOT_PLACED order,
	// creating one with defaults when none exists. The check-then-act
	// runs locked so two concurrent calls cannot both create a cart.
	GetOrCreateOpenByUserID(ctx context.Context, userID int64) (model.Order, error)

	// ユーザーのNOT_PLACED注文一覧（新しい順）
	ListOpenByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	// 全ステータスの注文履歴（新しい順）
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	Update(ctx context.Context, order model.Order) error

	// Delete removes the order together with its line rows.
	Delete(ctx context.Context, orderID int64) error
}
