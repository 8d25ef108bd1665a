package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jcarlounavas/gcashtrack/internal/alias"
	aliasStore "github.com/jcarlounavas/gcashtrack/internal/alias/store"
	"github.com/jcarlounavas/gcashtrack/internal/auth"
	authStore "github.com/jcarlounavas/gcashtrack/internal/auth/store"
	"github.com/jcarlounavas/gcashtrack/internal/config"
	"github.com/jcarlounavas/gcashtrack/internal/database"
	"github.com/jcarlounavas/gcashtrack/internal/export"
	gcashtrackHttp "github.com/jcarlounavas/gcashtrack/internal/http"
	aliasHandler "github.com/jcarlounavas/gcashtrack/internal/http/alias"
	authHandler "github.com/jcarlounavas/gcashtrack/internal/http/auth"
	exportHandler "github.com/jcarlounavas/gcashtrack/internal/http/export"
	stmtHandler "github.com/jcarlounavas/gcashtrack/internal/http/statement"
	uploadHandler "github.com/jcarlounavas/gcashtrack/internal/http/upload"
	"github.com/jcarlounavas/gcashtrack/internal/parser"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
	stmtStore "github.com/jcarlounavas/gcashtrack/internal/statement/store"
	"github.com/jcarlounavas/gcashtrack/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		statementService = statement.NewService(stmtStore.New(db))
		parserService    = parser.NewService()
		uploadService    = upload.NewService(parserService, statementService)
		aliasService     = alias.NewService(aliasStore.New(db))
		exportService    = export.NewService(statementService, aliasService)
		authService      = auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	)

	var (
		authH      = authHandler.NewHandler(authService)
		uploadH    = uploadHandler.NewHandler(uploadService, cfg.Upload.MaxSize)
		statementH = stmtHandler.NewHandler(statementService)
		exportH    = exportHandler.NewHandler(exportService, statementService)
		aliasH     = aliasHandler.NewHandler(aliasService)
	)

	router := gcashtrackHttp.New(authService, authH, uploadH, statementH, exportH, aliasH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
