package model

import "time"

// 注文の明細
// FoodItemID becomes nil when the referenced food item is deleted;
// the row itself stays so the order keeps its item count.
type OrderItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64     `gorm:"not null;index" json:"order_id"`
	FoodItemID *int64    `gorm:"index" json:"food_item"`
	Quantity   int64     `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
