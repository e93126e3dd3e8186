package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/invoice-orders/internal/batch"
	"github.com/joseph-ayodele/invoice-orders/internal/common"
	"github.com/joseph-ayodele/invoice-orders/internal/export"
	"github.com/joseph-ayodele/invoice-orders/internal/llm/openai"
	"github.com/joseph-ayodele/invoice-orders/internal/orders"
	repo "github.com/joseph-ayodele/invoice-orders/internal/repository"
	svc "github.com/joseph-ayodele/invoice-orders/internal/server"
	"github.com/joseph-ayodele/invoice-orders/internal/upload"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir        = flag.String("dir", "", "directory of invoices to import (required)")
		out        = flag.String("out", "", "output XLSX path (defaults to orders.xlsx next to --dir)")
		noExport   = flag.Bool("no-export", false, "skip writing the XLSX workbook")
		skipHidden = flag.Bool("skip-hidden", true, "skip dot files and directories")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(filepath.Clean(*dir)), "orders.xlsx")
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	cfg.Log.Format = "json"
	logger := common.NewLogger(cfg.Log)

	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is not set\n")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(db, logger)
	ordersRepo := repo.NewOrderRepository(db, logger)

	client := openai.NewClient(openai.Config{
		APIKey:       cfg.LLM.APIKey,
		BaseURL:      cfg.LLM.BaseURL,
		Model:        cfg.LLM.Model,
		Temperature:  cfg.LLM.Temperature,
		MaxTokens:    cfg.LLM.MaxTokens,
		Timeout:      cfg.LLM.Timeout,
		StrictSchema: cfg.LLM.StrictSchema,
	}, logger)
	uploads, err := upload.NewService(cfg.Upload.Dir, client, logger)
	if err != nil {
		logger.Error("failed to prepare upload dir", "error", err)
		os.Exit(1)
	}

	importer := batch.NewImporter(uploads, orders.NewService(ordersRepo, logger), logger)
	results, stats, err := importer.ImportDirectory(ctx, *dir, *skipHidden)
	if err != nil {
		logger.Error("import stopped", "error", err)
	}

	if !*noExport {
		b, xerr := export.NewService(ordersRepo, logger).ExportOrdersXLSX(ctx)
		if xerr != nil {
			logger.Error("failed to export orders", "error", xerr)
			os.Exit(1)
		}
		if werr := os.WriteFile(*out, b, 0o644); werr != nil {
			logger.Error("failed to write output file", "path", *out, "error", werr)
			os.Exit(1)
		}
	}

	fmt.Printf("Batch import complete!\n")
	fmt.Printf("- Files scanned: %d\n", stats.Scanned)
	fmt.Printf("- Invoices matched: %d\n", stats.Matched)
	fmt.Printf("- Orders created: %d\n", stats.Succeeded)
	fmt.Printf("- Failures: %d\n", stats.Failed)
	for _, r := range results {
		if r.Err != "" {
			fmt.Printf("  %s: %s\n", r.Path, r.Err)
		}
	}
	if !*noExport {
		fmt.Printf("- Output: %s\n", *out)
	}
	if err != nil || stats.Failed > 0 {
		os.Exit(1)
	}
}
