package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Configはアプリ全体の設定
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// DATABASE_URL wins over the individual POSTGRES_* fields
	DatabaseURL string `envconfig:"DATABASE_URL"`

	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"postgres"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"app"`
	PostgresSSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`

	// how long to keep polling an unavailable database at startup
	DBConnectAttempts int `envconfig:"DB_CONNECT_ATTEMPTS" default:"30"`

	JWTSecret      string        `envconfig:"JWT_SECRET" default:"dev_secret_change_me"`
	AccessTokenTTL time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"24h"`

	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`
}

// Loadは環境変数から設定を組み立てる
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
