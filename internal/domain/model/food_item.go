package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type FoodType string

const (
	FoodTypeStarter    FoodType = "STARTER"
	FoodTypeMainCourse FoodType = "MAIN_COURSE"
	FoodTypeDessert    FoodType = "DESSERT"
	FoodTypeDrink      FoodType = "DRINK"
)

func (t FoodType) Valid() bool {
	switch t {
	case FoodTypeStarter, FoodTypeMainCourse, FoodTypeDessert, FoodTypeDrink:
		return true
	}
	return false
}

type FoodItem struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// fixed-point, 2 decimals, never negative
	Price decimal.Decimal `gorm:"type:numeric(7,2);not null" json:"price"`

	Available bool `gorm:"not null;default:false" json:"available"`

	// URL of the uploaded image, nil until one is uploaded
	Image *string `gorm:"type:varchar(512)" json:"image"`

	Type FoodType `gorm:"type:varchar(20);not null;default:'MAIN_COURSE'" json:"type"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
