package server

import (
	"strings"

	"app/internal/config"
	mw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func Start(cfg config.Config, logger *zap.Logger, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	// 末尾スラッシュ付きでも同じルートに落とす
	e.Pre(echomw.RemoveTrailingSlash())

	e.Use(mw.RequestLogger(logger))
	e.Use(echomw.Recover())

	RegisterRoutes(e, cfg, h)

	addr := cfg.Port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	return e.Start(addr)
}
