package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	IntegrationID  string
	IntegrationKey string
	ResultURL      string
	ReturnURL      string
	AppPort        string
	AppEnv         string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		IntegrationID:  os.Getenv("PAYNOW_INTEGRATION_ID"),
		IntegrationKey: os.Getenv("PAYNOW_INTEGRATION_KEY"),
		ResultURL:      os.Getenv("RESULT_URL"),
		ReturnURL:      os.Getenv("RETURN_URL"),
		AppPort:        os.Getenv("APP_PORT"),
		AppEnv:         os.Getenv("APP_ENV"),
	}

	if cfg.IntegrationID == "" || cfg.IntegrationKey == "" {
		log.Fatal("Paynow integration credentials not loaded properly")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}
