package llm

import (
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// NewHTTPClient returns a resty client for a JSON completion API. Requests and
// responses are logged with a shared req_id; retries stay disabled.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) *resty.Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get("X-Client-Request-Id") == "" {
			r.SetHeader("X-Client-Request-Id", uuid.New().String())
		}
		logger.Info("llm.http.request",
			"req_id", r.Header.Get("X-Client-Request-Id"),
			"method", r.Method,
			"url", r.URL,
		)
		return nil
	})
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Info("llm.http.response",
			"req_id", resp.Request.Header.Get("X-Client-Request-Id"),
			"status", resp.StatusCode(),
			"bytes", len(resp.Body()),
			"elapsed_ms", resp.Time().Milliseconds(),
		)
		return nil
	})
	c.OnError(func(r *resty.Request, err error) {
		logger.Error("llm.http.send_error",
			"req_id", r.Header.Get("X-Client-Request-Id"),
			"error", err,
		)
	})
	return c
}
