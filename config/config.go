package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Auth        AuthConfig
	Recognition RecognitionConfig
	Storage     StorageConfig

	AppEnv      string
	LogLevel    string
	EnableDocs  bool
	CORSOrigins []string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type DBConfig struct {
	Driver   string // postgres | sqlite
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
	Path     string // sqlite file
}

type AuthConfig struct {
	Password     string
	JWTSecret    string
	RequireToken bool
}

type RecognitionConfig struct {
	Provider       string // gemini | rekognition | auto
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	TimeoutSeconds int
	AWSRegion      string
}

type StorageConfig struct {
	Bucket    string
	Region    string
	PublicURL string
}

// Load reads configuration from the environment, after applying a .env file
// when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	awsRegion := getEnv("AWS_REGION", "us-east-1")
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 30),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 60),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "nutrition_ai"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "nutrition.db"),
		},
		Auth: AuthConfig{
			Password:     getEnv("AUTH_PASSWORD", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
			RequireToken: getEnvBool("AUTH_REQUIRE_TOKEN", false),
		},
		Recognition: RecognitionConfig{
			Provider:       strings.ToLower(getEnv("RECOGNITION_PROVIDER", "gemini")),
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			GeminiBaseURL:  getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			TimeoutSeconds: getEnvAsInt("RECOGNITION_TIMEOUT_SECONDS", 30),
			AWSRegion:      awsRegion,
		},
		Storage: StorageConfig{
			Bucket:    getEnv("S3_BUCKET", ""),
			Region:    getEnv("S3_REGION", awsRegion),
			PublicURL: getEnv("S3_PUBLIC_URL", ""),
		},
		AppEnv:      normalizeEnv(getEnv("APP_ENV", "production")),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		EnableDocs:  getEnvBool("ENABLE_API_DOCS", false),
		CORSOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("invalid DB_DRIVER: %s (must be postgres or sqlite)", c.DB.Driver)
	}

	switch c.Recognition.Provider {
	case "gemini", "rekognition", "auto":
	default:
		return fmt.Errorf("invalid RECOGNITION_PROVIDER: %s (must be gemini, rekognition or auto)", c.Recognition.Provider)
	}
	if c.Recognition.TimeoutSeconds <= 0 {
		return fmt.Errorf("RECOGNITION_TIMEOUT_SECONDS must be positive")
	}

	if c.Auth.RequireToken && c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_REQUIRE_TOKEN needs JWT_SECRET")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// DocsEnabled reports whether the swagger UI should be mounted.
func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsSlice(key string, fallback []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
