package common

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-orders/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Upload   UploadConfig
	LLM      LLMConfig
	Log      LogConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver          string // sqlite | postgres
	DSN             string
	BusyTimeout     time.Duration
	MaxConns        int
	ConnMaxLifetime time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr        string
	GinMode         string
	AllowOrigins    []string
	ShutdownTimeout time.Duration
}

// UploadConfig holds upload-related configuration
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	BaseURL      string
	Model        string
	APIKey       string
	Temperature  float32
	MaxTokens    int
	Timeout      time.Duration
	StrictSchema bool
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			DSN:             getEnv("DB_URL", "invoice_database.db"),
			BusyTimeout:     getEnvAsDuration("DB_BUSY_TIMEOUT", 20*time.Second),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Server: ServerConfig{
			HTTPAddr:        normalizeAddr(getEnv("HTTP_ADDR", ":5000")),
			GinMode:         getEnv("GIN_MODE", "release"),
			AllowOrigins:    getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Upload: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", DefaultUploadDir()),
			MaxBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", constants.MaxUploadBytesDefault),
		},
		LLM: LLMConfig{
			BaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			Temperature:  getEnvAsFloat32("OPENAI_TEMPERATURE", 0.1),
			MaxTokens:    getEnvAsInt("OPENAI_MAX_TOKENS", 2000),
			Timeout:      getEnvAsDuration("OPENAI_TIMEOUT", 60*time.Second),
			StrictSchema: getEnvAsBool("OPENAI_STRICT_SCHEMA", false),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}
}

// DefaultUploadDir prefers an ephemeral location under /tmp when one exists.
func DefaultUploadDir() string {
	if st, err := os.Stat("/tmp"); err == nil && st.IsDir() {
		return filepath.Join("/tmp", "invoice_uploads")
	}
	return "uploads"
}

func normalizeAddr(addr string) string {
	if addr != "" && !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Validate validates the loaded configuration. A missing OPENAI_API_KEY is
// not an error: the server starts and uploads fail until it is set.
func (c *Config) Validate() error {
	v := NewValidator().
		Field("DB_DRIVER", c.Database.Driver, Required, OneOf("sqlite", "postgres")).
		Field("DB_URL", c.Database.DSN, Required).
		Field("HTTP_ADDR", c.Server.HTTPAddr, Required).
		Field("UPLOAD_DIR", c.Upload.Dir, Required)
	if c.Upload.MaxBytes <= 0 {
		v.Add("MAX_UPLOAD_BYTES", c.Upload.MaxBytes, "must be positive")
	}
	if c.LLM.MaxTokens <= 0 {
		v.Add("OPENAI_MAX_TOKENS", c.LLM.MaxTokens, "must be positive")
	}
	if err := v.Error(); err != nil {
		return NewAppError("CONFIG_ERROR", err.Error(), ErrInvalidInput)
	}
	return nil
}
