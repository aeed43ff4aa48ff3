package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type FoodItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewFoodItemGormRepository(db *gorm.DB) *FoodItemGormRepository {
	return &FoodItemGormRepository{db: db}
}

func (r *FoodItemGormRepository) List(ctx context.Context) ([]model.FoodItem, error) {
	var items []model.FoodItem

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.FoodItem{}, err
	}
	return items, nil
}

func (r *FoodItemGormRepository) FindByID(ctx context.Context, id int64) (model.FoodItem, error) {
	var f model.FoodItem

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FoodItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.FoodItem{}, err
	}
	return f, nil
}

func (r *FoodItemGormRepository) Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return model.FoodItem{}, err
	}
	return f, nil
}

func (r *FoodItemGormRepository) Update(ctx context.Context, f model.FoodItem) error {
	// 全カラムを書く。PATCHのマージはusecase側で済ませておく
	res := r.db.WithContext(ctx).
		Model(&model.FoodItem{}).
		Where("id = ?", f.ID).
		Select("name", "description", "price", "available", "image", "type").
		Updates(map[string]interface{}{
			"name":        f.Name,
			"description": f.Description,
			"price":       f.Price,
			"available":   f.Available,
			"image":       f.Image,
			"type":        f.Type,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Delete removes the item. Order lines that reference it keep their row
// but lose the reference, matching ON DELETE SET NULL.
func (r *FoodItemGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f model.FoodItem
		if err := tx.Where("id = ?", id).First(&f).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&model.OrderItem{}).
			Where("food_item_id = ?", id).
			Update("food_item_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&model.FoodItem{}, id).Error
	})
}
