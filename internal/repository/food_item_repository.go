package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type FoodItemRepository interface {
	// List returns every food item, availability is not filtered here.
	List(ctx context.Context) ([]model.FoodItem, error)

	FindByID(ctx context.Context, id int64) (model.FoodItem, error)

	Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error)
	Update(ctx context.Context, f model.FoodItem) error

	// Delete removes the item and nulls out order line references to it
	// in the same transaction.
	Delete(ctx context.Context, id int64) error
}
