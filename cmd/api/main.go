package main

import (
	"log"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	// DB接続（起動直後はDBがまだ立ち上がっていないことがある）
	gormDB, err := db.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	// Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	foodItemRepo := infraRepo.NewFoodItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// Usecase生成
	authUC := usecase.NewAuthUsecase(
		userRepo,
		usecase.NewBcryptHasher(12),
		usecase.NewJWTIssuer(cfg.JWTSecret, cfg.AccessTokenTTL),
		usecase.RealClock{},
	)
	addressUC := usecase.NewAddressUsecase(addressRepo)
	foodItemUC := usecase.NewFoodItemUsecase(foodItemRepo, auditRepo, cfg.UploadDir)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderItemRepo, foodItemRepo, addressRepo)

	// Handler生成
	handlers := server.Handlers{
		Auth:      handler.NewAuthHandler(authUC),
		Addresses: handler.NewAddressHandler(addressUC),
		FoodItems: handler.NewFoodItemHandler(foodItemUC),
		Orders:    handler.NewOrderHandler(orderUC),
	}

	logger.Info("starting server", zap.String("port", cfg.Port))

	if err := server.Start(cfg, logger, handlers); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
