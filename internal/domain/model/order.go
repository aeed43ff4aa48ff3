package model

import "time"

type OrderStatus string

const (
	// NOT_PLACED is the cart: at most one per user at a time
	OrderStatusNotPlaced OrderStatus = "NOT_PLACED"
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNotPlaced, OrderStatusPending, OrderStatusConfirmed,
		OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodCard
}

type Order struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	Status        OrderStatus   `gorm:"type:varchar(20);not null;index;default:'NOT_PLACED'" json:"status"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null;default:'CASH'" json:"payment_method"`

	// nil until the user picks one
	DeliveryAddressID *int64 `gorm:"index" json:"delivery_address"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
