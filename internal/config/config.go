package config

import (
	"os"
	"time"
)

type AppConfig struct {
	HTTPAddr           string
	CurrencyAPIBaseURL string
	CurrencyAPITimeout time.Duration
	Env                string
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CurrencyAPIBaseURL: getEnv("CURRENCY_API_URL", "https://api.exchangerate.host"),
		CurrencyAPITimeout: getDurationEnv("CURRENCY_API_TIMEOUT", 10*time.Second),
		Env:                getEnv("APP_ENV", "production"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
