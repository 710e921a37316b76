package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config настройки сервиса, собранные из переменных окружения
type Config struct {
	HTTPPort  string
	GRPCPort  string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load читает .env (если он есть) и собирает конфигурацию.
// Отсутствующие переменные заменяются значениями по умолчанию.
func Load() *Config {
	// .env не обязателен, в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	return &Config{
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		GRPCPort:  getEnv("GRPC_PORT", "9090"),
		DBPath:    getEnv("DB_PATH", "./calculator.db"),
		JWTSecret: getEnv("JWT_SECRET", "super_secret_key_change_in_production"),
		TokenTTL:  getDurationEnv("TOKEN_TTL", time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
