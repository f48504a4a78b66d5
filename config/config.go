package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Pagination limits shared by handlers.
const (
	DefaultLimitPosts    = 20
	MaxLimitPosts        = 100
	DefaultLimitComments = 20
	MaxLimitComments     = 100
	DefaultLimitUsers    = 50
	MaxLimitUsers        = 200
)

type Config struct {
	Port        string
	MetricsPort string
	MongoURI    string
	DBName      string
	JWTSecret   string
	LogLevel    string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	StripeSecretKey string

	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	S3Bucket     string
	S3Endpoint   string
}

// Load reads .env (values there win over the environment, as in local dev)
// and collects everything the app needs. Only the hard requirements fail
// loading; integrations left blank disable the corresponding endpoints.
func Load() (*Config, error) {
	if err := godotenv.Overload(".env"); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	cfg := &Config{
		Port:        getenv("PORT", "3000"),
		MetricsPort: getenv("METRICS_PORT", "9090"),
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      getenv("DB_NAME", "yaopets"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),

		AWSRegion:    getenv("AWS_REGION", "us-east-1"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3Endpoint:   os.Getenv("S3_ENDPOINT"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
