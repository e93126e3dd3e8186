package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-orders/constants"
	"github.com/joseph-ayodele/invoice-orders/internal/common"
	"github.com/joseph-ayodele/invoice-orders/internal/llm"
)

const (
	MsgNoFile        = "No file provided"
	MsgNoFileName    = "No file selected"
	MsgInvalidFormat = "Invalid file type. Allowed: PNG, JPG, JPEG, PDF"
)

// Result is what an upload returns to the caller.
type Result struct {
	Data     json.RawMessage `json:"data"`
	Filename string          `json:"filename"`
}

// Service saves an uploaded invoice to the scratch directory, runs
// extraction on it and removes it again.
type Service struct {
	dir       string
	extractor llm.InvoiceExtractor
	logger    *slog.Logger
}

// NewService prepares the scratch directory. When preferred cannot be created
// the OS temp directory is used instead.
func NewService(preferred string, extractor llm.InvoiceExtractor, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if extractor == nil {
		return nil, errors.New("upload: extractor is required")
	}
	dir, err := ResolveDir(preferred, logger)
	if err != nil {
		return nil, err
	}
	return &Service{dir: dir, extractor: extractor, logger: logger}, nil
}

// ResolveDir creates preferred or falls back to os.TempDir().
func ResolveDir(preferred string, logger *slog.Logger) (string, error) {
	if preferred == "" {
		preferred = common.DefaultUploadDir()
	}
	err := os.MkdirAll(preferred, 0o755)
	if err == nil {
		return preferred, nil
	}
	logger.Warn("upload.dir.fallback", "dir", preferred, "error", err)
	tmp := os.TempDir()
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return "", fmt.Errorf("upload dir: %w", err)
	}
	return tmp, nil
}

// Dir returns the scratch directory in use.
func (s *Service) Dir() string {
	return s.dir
}

// Validate checks the client-supplied file name.
func Validate(originalName string) error {
	if err := common.NewValidator().Field("filename", originalName, common.Required).Error(); err != nil {
		return common.InvalidInputError(MsgNoFileName)
	}
	if !constants.IsAllowedFile(originalName) {
		return common.InvalidInputError(MsgInvalidFormat)
	}
	return nil
}

// Process validates the name, writes src under a unique name, extracts and
// always removes the file before returning.
func (s *Service) Process(ctx context.Context, originalName string, src io.Reader) (*Result, error) {
	if err := Validate(originalName); err != nil {
		s.logger.Warn("upload.rejected", "filename", originalName, "reason", err.Error())
		return nil, err
	}

	start := time.Now()
	name := uniqueName(originalName)
	path := filepath.Join(s.dir, name)

	n, err := save(path, src)
	defer s.remove(path)
	if err != nil {
		s.logger.Error("upload.save_failed", "path", path, "error", err)
		return nil, err
	}
	s.logger.Info("upload.saved",
		"request_id", common.RequestIDFromContext(ctx),
		"file", name,
		"bytes", n,
	)

	data, err := s.extractor.ExtractInvoice(ctx, path)
	if err != nil {
		s.logger.Error("upload.extract_failed",
			"file", name, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	s.logger.Info("upload.ok",
		"file", name,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Result{Data: data, Filename: name}, nil
}

func uniqueName(originalName string) string {
	safe := SecureFilename(originalName)
	if safe == "" {
		safe = "upload." + constants.NormalizeExt(filepath.Ext(originalName))
	}
	return uuid.New().String() + "_" + safe
}

func save(path string, src io.Reader) (int64, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return 0, fmt.Errorf("create upload file: %w", err)
	}
	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("write upload file: %w", err)
	}
	return n, nil
}

// remove is best effort; failures are logged only.
func (s *Service) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("upload.cleanup_failed", "path", path, "error", err)
	}
}
