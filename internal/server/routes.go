package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Addresses *handler.AddressHandler
	FoodItems *handler.FoodItemHandler
	Orders    *handler.OrderHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e, cfg)
	h.Addresses.RegisterRoutes(e, cfg)
	h.FoodItems.RegisterRoutes(e, cfg)
	h.Orders.RegisterRoutes(e, cfg)

	// uploaded food item images
	e.Static("/uploads", cfg.UploadDir)
}
