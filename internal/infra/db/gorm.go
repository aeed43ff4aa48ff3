package db

import (
	"fmt"
	"time"

	"app/internal/config"
	"app/internal/domain/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and waits until it accepts connections.
// The database container is usually still starting when the API comes
// up, so a failed open is retried once per second.
func Connect(cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
			cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
		)
	}

	var lastErr error
	for i := 0; i < cfg.DBConnectAttempts; i++ {
		gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := gormDB.DB()
			if dbErr != nil {
				lastErr = dbErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				lastErr = pingErr
			} else {
				return gormDB, nil
			}
		} else {
			lastErr = err
		}

		logger.Info("database unavailable, waiting 1 second...")
		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("database did not become available: %w", lastErr)
}

// openCartUniqueIndex は「ユーザーごとにNOT_PLACED注文は1件だけ」を
// ストレージ側でも保証する部分ユニークインデックス。
const openCartUniqueIndex = `CREATE UNIQUE INDEX IF NOT EXISTS uq_orders_open_cart ON orders (user_id) WHERE status = 'NOT_PLACED'`

// Migrate creates or updates the schema for every entity.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.FoodItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.AuditLog{},
	); err != nil {
		return err
	}

	return gormDB.Exec(openCartUniqueIndex).Error
}
