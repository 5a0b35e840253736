package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	Env        string

	MongoURI string
	MongoDB  string

	// Regras de funcionamento da barbearia
	OpenHour      int
	CloseHour     int
	ClosedWeekday time.Weekday

	// Notificações via WhatsApp
	OwnerPhone  string
	CountryCode string
	ShopName    string

	// Cache opcional da listagem (desligado quando vazio)
	RedisAddr     string
	RedisCacheTTL time.Duration
}

func Load() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Env:        getEnv("ENV", "development"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "barbearia"),

		OpenHour:      getEnvInt("OPEN_HOUR", 9),
		CloseHour:     getEnvInt("CLOSE_HOUR", 19),
		ClosedWeekday: time.Weekday(getEnvInt("CLOSED_WEEKDAY", int(time.Monday))),

		OwnerPhone:  getEnv("OWNER_PHONE", "82988123197"),
		CountryCode: getEnv("COUNTRY_CODE", "55"),
		ShopName:    getEnv("SHOP_NAME", "Barbearia Biu 1"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisCacheTTL: time.Duration(getEnvInt("REDIS_CACHE_TTL_SECONDS", 60)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
