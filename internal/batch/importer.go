package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-orders/constants"
	"github.com/joseph-ayodele/invoice-orders/internal/entity"
	"github.com/joseph-ayodele/invoice-orders/internal/orders"
	"github.com/joseph-ayodele/invoice-orders/internal/upload"
)

type FileResult struct {
	Path    string
	OrderID int64
	Err     string
}

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Importer runs local invoice files through the same save, extract and
// create path the HTTP API uses.
type Importer struct {
	uploads *upload.Service
	orders  *orders.Service
	logger  *slog.Logger
}

func NewImporter(uploads *upload.Service, ordersSvc *orders.Service, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{uploads: uploads, orders: ordersSvc, logger: logger}
}

// ImportFile extracts one invoice and stores it as a new order.
func (im *Importer) ImportFile(ctx context.Context, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	res, err := im.uploads.Process(ctx, filepath.Base(path), f)
	if err != nil {
		return 0, err
	}
	var payload entity.InvoicePayload
	if err := json.Unmarshal(res.Data, &payload); err != nil {
		return 0, fmt.Errorf("decode extracted invoice: %w", err)
	}
	return im.orders.Create(ctx, &payload)
}

// ImportDirectory walks root and imports every file with an allowed
// extension. Per-file failures are recorded and the walk continues; a
// cancelled context stops it.
func (im *Importer) ImportDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}
	start := time.Now()

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		if !constants.IsAllowedFile(d.Name()) {
			return nil
		}
		stats.Matched++

		id, err := im.ImportFile(ctx, path)
		if err != nil {
			im.logger.Error("batch.import_failed", "path", path, "error", err)
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		im.logger.Info("batch.imported", "path", path, "order_id", id)
		results = append(results, FileResult{Path: path, OrderID: id})
		stats.Succeeded++
		return nil
	})

	im.logger.Info("batch.done",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
