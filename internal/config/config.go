package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// MissingProductPolicy controls how order creation treats line items
// whose product id does not resolve.
type MissingProductPolicy string

const (
	// MissingProductDegrade keeps the order and books the item at price
	// zero with no pickup snapshot.
	MissingProductDegrade MissingProductPolicy = "degrade"
	// MissingProductStrict fails the whole order creation.
	MissingProductStrict MissingProductPolicy = "strict"
)

type Config struct {
	DBHost               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBPort               string
	AppPort              string
	AppEnv               string
	SecretKey            string
	MissingProductPolicy MissingProductPolicy
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:               os.Getenv("DB_HOST"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBPort:               os.Getenv("DB_PORT"),
		AppPort:              os.Getenv("APP_PORT"),
		AppEnv:               os.Getenv("APP_ENV"),
		SecretKey:            os.Getenv("SECRET_KEY"),
		MissingProductPolicy: parseMissingProductPolicy(os.Getenv("ORDER_MISSING_PRODUCT_POLICY")),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func parseMissingProductPolicy(raw string) MissingProductPolicy {
	if raw == string(MissingProductStrict) {
		return MissingProductStrict
	}
	return MissingProductDegrade
}
