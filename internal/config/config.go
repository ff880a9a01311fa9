package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	// Merchant credentials for the ShurjoPay processor. Sensitive values may
	// come from the encrypted settings store instead of the environment.
	StoreID       string
	StorePassword string
	StorePrefix   string
	DevMode       bool

	// Collaborator-facing settings.
	CallbackBaseURL  string
	CompanyID        string
	DefaultReturnURL string
	JWTSecret        string
	SettingsKey      string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           os.Getenv("DB_PORT"),
		AppPort:          os.Getenv("APP_PORT"),
		AppEnv:           os.Getenv("APP_ENV"),
		StoreID:          os.Getenv("SHURJOPAY_STORE_ID"),
		StorePassword:    os.Getenv("SHURJOPAY_STORE_PASSWORD"),
		StorePrefix:      os.Getenv("SHURJOPAY_STORE_PREFIX"),
		DevMode:          os.Getenv("SHURJOPAY_DEV_MODE") == "true",
		CallbackBaseURL:  os.Getenv("GW_CALLBACK_URL"),
		CompanyID:        os.Getenv("COMPANY_ID"),
		DefaultReturnURL: os.Getenv("DEFAULT_RETURN_URL"),
		JWTSecret:        os.Getenv("SECRET_KEY"),
		SettingsKey:      os.Getenv("SETTINGS_KEY"),
	}

	if cfg.StoreID == "" || cfg.StorePassword == "" {
		log.Fatal("Environment variables not loaded properly: missing store credentials")
	}

	return cfg
}
