package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	LogLevel         string
	OperationsPath   string
	UserSettingsPath string
	ReportsDir       string

	CurrencyAPIURL string
	CurrencyAPIKey string
	StockAPIURL    string
	StockAPIKey    string

	HTTPClientTimeout time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	currencyAPIKey := getEnv("CURRENCY_API_KEY", "")
	if currencyAPIKey == "" {
		log.Println("WARNING: CURRENCY_API_KEY not set. Currency rates will come from the static fallback table.")
	}
	stockAPIKey := getEnv("STOCK_API_KEY", "")
	if stockAPIKey == "" {
		log.Println("WARNING: STOCK_API_KEY not set. Stock prices will come from the static fallback table.")
	}

	Cfg = &AppConfig{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		OperationsPath:   getEnv("OPERATIONS_PATH", "data/operations.csv"),
		UserSettingsPath: getEnv("USER_SETTINGS_PATH", "user_settings.json"),
		ReportsDir:       getEnv("REPORTS_DIR", "reports"),

		CurrencyAPIURL: getEnv("CURRENCY_API_URL", "https://api.apilayer.com/currency_data"),
		CurrencyAPIKey: currencyAPIKey,
		StockAPIURL:    getEnv("STOCK_API_URL", "https://www.alphavantage.co/query"),
		StockAPIKey:    stockAPIKey,

		HTTPClientTimeout: getEnvAsDuration("HTTP_CLIENT_TIMEOUT", 20*time.Second),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, OperationsPath=%s, ReportsDir=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.OperationsPath, Cfg.ReportsDir)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
