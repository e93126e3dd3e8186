package common

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "DB_URL", "HTTP_ADDR", "CORS_ALLOW_ORIGINS", "MAX_UPLOAD_BYTES", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_TEMPERATURE"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()

	if cfg.Database.Driver != "sqlite" || cfg.Database.DSN != "invoice_database.db" {
		t.Fatalf("unexpected database defaults %+v", cfg.Database)
	}
	if cfg.Database.BusyTimeout != 20*time.Second {
		t.Fatalf("busy timeout = %v", cfg.Database.BusyTimeout)
	}
	if cfg.Server.HTTPAddr != ":5000" {
		t.Fatalf("addr = %q", cfg.Server.HTTPAddr)
	}
	if len(cfg.Server.AllowOrigins) != 1 || cfg.Server.AllowOrigins[0] != "*" {
		t.Fatalf("origins = %v", cfg.Server.AllowOrigins)
	}
	if cfg.Upload.MaxBytes != 16<<20 {
		t.Fatalf("max bytes = %d", cfg.Upload.MaxBytes)
	}
	if cfg.LLM.Model != "gpt-4o-mini" || cfg.LLM.MaxTokens != 2000 || cfg.LLM.APIKey != "" {
		t.Fatalf("unexpected llm defaults %+v", cfg.LLM)
	}
	if cfg.LLM.Temperature < 0.099 || cfg.LLM.Temperature > 0.101 {
		t.Fatalf("temperature = %v", cfg.LLM.Temperature)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_URL", "postgres://localhost/orders")
	t.Setenv("HTTP_ADDR", "8080")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example ,")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("OPENAI_TIMEOUT", "5s")
	t.Setenv("OPENAI_STRICT_SCHEMA", "true")
	t.Setenv("OPENAI_MAX_TOKENS", "not-a-number")

	cfg := LoadConfig()
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("driver = %q", cfg.Database.Driver)
	}
	if cfg.Server.HTTPAddr != ":8080" {
		t.Fatalf("addr = %q", cfg.Server.HTTPAddr)
	}
	if got := strings.Join(cfg.Server.AllowOrigins, "|"); got != "http://a.example|http://b.example" {
		t.Fatalf("origins = %q", got)
	}
	if cfg.Upload.MaxBytes != 1024 || cfg.LLM.Timeout != 5*time.Second || !cfg.LLM.StrictSchema {
		t.Fatalf("overrides not applied: %+v %+v", cfg.Upload, cfg.LLM)
	}
	if cfg.LLM.MaxTokens != 2000 {
		t.Fatalf("unparseable value should fall back to default, got %d", cfg.LLM.MaxTokens)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("MAX_UPLOAD_BYTES", "-1")
	err := LoadConfig().Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	for _, want := range []string{"DB_DRIVER", "MAX_UPLOAD_BYTES"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q should mention %s", err.Error(), want)
		}
	}
}

func TestClientErrors(t *testing.T) {
	err := InvalidInputError("No file selected")
	if err.Error() != "No file selected" || !IsInvalidInput(err) || IsNotFound(err) {
		t.Fatalf("unexpected invalid input error %v", err)
	}
	wrapped := WrapError(NotFoundError("Order not found"), "get order")
	if !IsNotFound(wrapped) {
		t.Fatalf("wrapped not found should still match")
	}
	if WrapError(nil, "noop") != nil {
		t.Fatalf("wrapping nil should stay nil")
	}
}

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogConfig{Level: "warn", Format: "json"}).Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level")
	}
	newLogger(&buf, LogConfig{Level: "warn", Format: "json"}).Warn("orders.test", "k", 1)
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"msg":"orders.test"`) {
		t.Fatalf("expected json line, got %q", buf.String())
	}
}
