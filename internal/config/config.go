package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers supported by the persistence layer.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// MinIOConfig holds object storage settings for MinIO.
// Archiving of uploaded originals is disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an object store endpoint was configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// GenerationConfig selects and configures the text-generation backend.
type GenerationConfig struct {
	Backend    string
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	TimeZone    string
	LogLevel    string
	BodyLimitMB int
	CORSOrigins string
	StoreDriver string
	Database    DatabaseConfig
	Mongo       MongoConfig
	MinIO       MinIOConfig
	Generation  GenerationConfig
}

// Location resolves TimeZone, falling back to UTC for unknown names.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BodyLimit returns the maximum accepted request body size in bytes.
func (c *AppConfig) BodyLimit() int {
	return c.BodyLimitMB * 1024 * 1024
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		TimeZone:    getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		BodyLimitMB: getEnvInt("UPLOAD_MAX_MB", 20),
		CORSOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DATABASE", "docqa"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Generation: GenerationConfig{
			Backend:  strings.ToLower(getEnv("GENERATION_BACKEND", "relay")),
			Endpoint: getEnv("GENERATION_ENDPOINT", "http://localhost:5000/generate"),
			// No default: a missing key is reported per request.
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GENERATION_MODEL", "gemini-1.5-flash"),
			TimeoutSec: getEnvInt("GENERATION_TIMEOUT_SEC", 60),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
