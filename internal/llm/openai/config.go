package openai

import (
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/joseph-ayodele/invoice-orders/internal/llm"
)

// Config for the OpenAI client.
type Config struct {
	APIKey       string        // empty means extraction fails with llm.ErrNotConfigured
	BaseURL      string        // default https://api.openai.com/v1
	Model        string        // e.g., "gpt-4o-mini"
	Temperature  float32       // 0..2
	MaxTokens    int           // output ceiling
	Timeout      time.Duration // http client timeout
	StrictSchema bool          // validate the extracted object against the invoice schema
}

type Client struct {
	cfg    Config
	http   *resty.Client
	strict *llm.SchemaValidator
	logger *slog.Logger
}

var _ llm.InvoiceExtractor = (*Client)(nil)

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		cfg:    cfg,
		http:   llm.NewHTTPClient(cfg.BaseURL, cfg.Timeout, logger),
		logger: logger,
	}
	if cfg.StrictSchema {
		v, err := llm.NewSchemaValidator(llm.BuildInvoiceJSONSchema())
		if err != nil {
			// the schema is static, so this only fires on a programming error
			logger.Error("llm.schema.compile_failed", "error", err)
		} else {
			c.strict = v
		}
	}
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	return c.cfg.Model
}
