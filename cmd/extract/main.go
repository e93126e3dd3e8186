package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/invoice-orders/constants"
	"github.com/joseph-ayodele/invoice-orders/internal/common"
	"github.com/joseph-ayodele/invoice-orders/internal/llm"
	"github.com/joseph-ayodele/invoice-orders/internal/llm/openai"
)

// extract runs invoice extraction on local files and prints the JSON.
//
//	extract <file> [times]
func main() {
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	cfg.Log.Format = "json"
	logger := common.NewLogger(cfg.Log)

	if len(os.Args) < 2 {
		logger.Error("usage: extract <file> [times]")
		os.Exit(2)
	}
	path := os.Args[1]
	if !constants.IsAllowedFile(path) {
		logger.Error("unsupported file type", "file", path)
		os.Exit(2)
	}
	times := 1
	if len(os.Args) >= 3 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil && n > 0 {
			times = n
		}
	}

	client := openai.NewClient(openai.Config{
		APIKey:       cfg.LLM.APIKey,
		BaseURL:      cfg.LLM.BaseURL,
		Model:        cfg.LLM.Model,
		Temperature:  cfg.LLM.Temperature,
		MaxTokens:    cfg.LLM.MaxTokens,
		Timeout:      cfg.LLM.Timeout,
		StrictSchema: cfg.LLM.StrictSchema,
	}, logger)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	failed := 0
	for i := 1; i <= times; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout+10*time.Second)
		start := time.Now()
		out, err := client.ExtractInvoice(ctx, path)
		cancel()
		if err != nil {
			logger.Error("extract.run.error", "iter", i, "error", err)
			if errors.Is(err, llm.ErrNotConfigured) {
				os.Exit(2)
			}
			failed++
			continue
		}
		logger.Info("extract.run.ok", "iter", i, "elapsed_ms", time.Since(start).Milliseconds())
		_ = enc.Encode(out)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
