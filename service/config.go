package service

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Session struct {
		Secret string
		Secure bool
	}

	ModelAPI struct {
		Endpoint string
		APIKey   string
		Timeout  time.Duration
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/tulisaja.db"),
	}

	// Session
	config.Session.Secret = getEnv("SESSION_SECRET", "development-secret")
	config.Session.Secure = config.Environment == "production"

	// Remote model API
	// Note: MODEL_API_KEY is validated in main.go before the app starts.
	// Tests don't need it since they point the client at a local httptest server.
	config.ModelAPI.Endpoint = getEnv("MODEL_API_ENDPOINT", "https://api.model-gateway.example.com")
	config.ModelAPI.APIKey = getEnv("MODEL_API_KEY", "")

	timeoutSeconds := getEnv("MODEL_API_TIMEOUT_SECONDS", "60")
	if seconds, err := strconv.Atoi(timeoutSeconds); err == nil && seconds > 0 {
		config.ModelAPI.Timeout = time.Duration(seconds) * time.Second
	} else {
		config.ModelAPI.Timeout = 60 * time.Second
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
