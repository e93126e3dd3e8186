package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-orders/internal/common"
	"github.com/joseph-ayodele/invoice-orders/internal/llm"
	"github.com/joseph-ayodele/invoice-orders/internal/utils"
)

type chatCompletion struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ExtractInvoice implements llm.InvoiceExtractor with a single vision
// chat/completions call. No retries.
func (c *Client) ExtractInvoice(ctx context.Context, filePath string) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, llm.ErrNotConfigured
	}

	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"max_tokens", c.cfg.MaxTokens,
		"file", filepath.Base(filePath),
		"strict", c.strict != nil,
	)

	part, err := llm.FileContentPart(filePath)
	if err != nil {
		c.logger.Error("llm.extract.read_error", "req_id", rid, "error", err)
		return nil, &llm.ExtractError{Cause: err}
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"max_tokens":  c.cfg.MaxTokens,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": llm.InvoicePrompt},
					part,
				},
			},
		},
	}

	var cc chatCompletion
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.cfg.APIKey).
		SetHeader("X-Client-Request-Id", rid).
		SetBody(body).
		SetResult(&cc).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, &llm.ExtractError{Cause: fmt.Errorf("openai http error: %w", err)}
	}
	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = utils.Truncate(strings.TrimSpace(resp.String()), 300)
		}
		c.logger.Error("llm.extract.status_error",
			"req_id", rid, "status", resp.StatusCode(), "message", msg,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, &llm.ExtractError{Cause: fmt.Errorf("openai status %d: %s", resp.StatusCode(), msg)}
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw_bytes", len(resp.Body()),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, &llm.ExtractError{Cause: errors.New("no choices in openai response")}
	}

	out, err := llm.DecodeContent(cc.Choices[0].Message.Content)
	if err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err,
			"content", utils.Truncate(cc.Choices[0].Message.Content, 500),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, &llm.ExtractError{Cause: err}
	}

	if c.strict != nil {
		coerced, changed, cErr := llm.CoerceNumericFields(out)
		if cErr == nil && len(changed) > 0 {
			c.logger.Warn("llm.extract.lenient_coerce_applied", "req_id", rid, "changed", changed)
			out = coerced
		}
		if vErr := c.strict.Validate(out); vErr != nil {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, &llm.ExtractError{Cause: fmt.Errorf("schema validation failed: %w", vErr)}
		}
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"bytes", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
