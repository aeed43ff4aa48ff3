package model

import "time"

// 配送先住所
type Address struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	City  string `gorm:"type:varchar(255);not null" json:"city"`
	State string `gorm:"type:varchar(255);not null" json:"state"`

	// postal code
	CEP int64 `gorm:"column:cep;not null" json:"cep"`

	Street string `gorm:"type:varchar(255);not null" json:"street"`
	Number int64  `gorm:"not null" json:"number"`

	// apartment, floor etc., optional
	Complement string `gorm:"type:varchar(255)" json:"complement"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
