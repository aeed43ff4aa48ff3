package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// openCartLockClass namespaces the advisory lock keys this repository
// takes, so they cannot collide with other locks on the same database.
const openCartLockClass = int64(0x63617274) // "cart"

// openCartLockKey maps a user to the advisory lock guarding their cart.
func openCartLockKey(userID int64) int64 {
	return openCartLockClass<<32 ^ userID
}

// GetOrCreateOpenByUserID はユーザーのNOT_PLACED注文を取得し、無ければ作成
func (r *OrderGormRepository) GetOrCreateOpenByUserID(ctx context.Context, userID int64) (model.Order, error) {
	var order model.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// NOT_PLACED行がまだ無いとFOR UPDATEは何もロックしないので、
		// check-then-act自体をユーザー単位のadvisory lockで直列化する。
		// ロックはトランザクション終了時に自動解放される
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", openCartLockKey(userID)).Error; err != nil {
			return err
		}

		findErr := tx.
			Where("user_id = ? AND status = ?", userID, model.OrderStatusNotPlaced).
			Order("id desc").
			First(&order).Error

		if findErr == nil {
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		newOrder := model.Order{
			UserID:        userID,
			Status:        model.OrderStatusNotPlaced,
			PaymentMethod: model.PaymentMethodCash,
		}

		if err := tx.Create(&newOrder).Error; err != nil {
			return err
		}

		order = newOrder
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderGormRepository) ListOpenByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.OrderStatusNotPlaced).
		Order("id desc").
		Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order

	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Update(ctx context.Context, order model.Order) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":              order.Status,
			"payment_method":      order.PaymentMethod,
			"delivery_address_id": order.DeliveryAddressID,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Delete removes the order and its line rows in one transaction.
func (r *OrderGormRepository) Delete(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o model.Order
		if err := tx.Where("id = ?", orderID).First(&o).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Order{}, orderID).Error
	})
}
