package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/invoice-orders/internal/common"
	"github.com/joseph-ayodele/invoice-orders/internal/export"
	"github.com/joseph-ayodele/invoice-orders/internal/llm/openai"
	"github.com/joseph-ayodele/invoice-orders/internal/orders"
	repo "github.com/joseph-ayodele/invoice-orders/internal/repository"
	svc "github.com/joseph-ayodele/invoice-orders/internal/server"
	"github.com/joseph-ayodele/invoice-orders/internal/upload"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	logger := common.NewLogger(cfg.Log)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	if cfg.LLM.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "driver", cfg.Database.Driver)
		os.Exit(1)
	}
	defer repo.Close(db, logger)

	ordersRepo := repo.NewOrderRepository(db, logger)

	openaiClient := openai.NewClient(openai.Config{
		APIKey:       cfg.LLM.APIKey,
		BaseURL:      cfg.LLM.BaseURL,
		Model:        cfg.LLM.Model,
		Temperature:  cfg.LLM.Temperature,
		MaxTokens:    cfg.LLM.MaxTokens,
		Timeout:      cfg.LLM.Timeout,
		StrictSchema: cfg.LLM.StrictSchema,
	}, logger)

	uploads, err := upload.NewService(cfg.Upload.Dir, openaiClient, logger)
	if err != nil {
		logger.Error("failed to prepare upload dir", "dir", cfg.Upload.Dir, "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.Server.GinMode)
	router := svc.NewRouter(svc.Deps{
		Orders:       orders.NewService(ordersRepo, logger),
		Uploads:      uploads,
		Export:       export.NewService(ordersRepo, logger),
		AllowOrigins: cfg.Server.AllowOrigins,
		MaxBodyBytes: cfg.Upload.MaxBytes,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: router,
	}

	logger.Info("invoice-orders listening",
		"addr", cfg.Server.HTTPAddr,
		"db_driver", cfg.Database.Driver,
		"upload_dir", uploads.Dir(),
		"model", openaiClient.Model(),
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := common.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	logger.Info("invoice-orders stopped")
}
