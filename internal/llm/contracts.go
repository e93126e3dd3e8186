package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotConfigured is returned when no API credential is available.
var ErrNotConfigured = errors.New("API key not configured")

// InvoiceExtractor turns an invoice image or PDF into the nested invoice JSON.
// The result is passed through to callers unchanged.
type InvoiceExtractor interface {
	ExtractInvoice(ctx context.Context, filePath string) (json.RawMessage, error)
}

// ExtractError wraps any failure after the credential check.
type ExtractError struct {
	Cause error
}

func (e *ExtractError) Error() string {
	return "Error extracting invoice data: " + e.Cause.Error()
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
