// Package main addsub API
// @title addsub API
// @version 1.0
// @description Evaluates addition/subtraction expressions and keeps an evaluation history
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/addsub/docs"
	"github.com/DjordjeVuckovic/addsub/internal/api/router"
	"github.com/DjordjeVuckovic/addsub/internal/api/server"
	"github.com/DjordjeVuckovic/addsub/internal/calc"
	"github.com/DjordjeVuckovic/addsub/internal/eval"
	"github.com/DjordjeVuckovic/addsub/internal/history/factory"
	pkgserver "github.com/DjordjeVuckovic/addsub/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	cfg, err := LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	store, cleanup, err := factory.NewStore(context.Background(), cfg.HistoryConfig)
	if err != nil {
		slog.Error("Failed to create history store", "type", cfg.HistoryConfig.Type, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	opts := []calc.Option{}
	if store != nil {
		opts = append(opts, calc.WithHistory(store))
		slog.Info("Evaluation history enabled", "type", cfg.HistoryConfig.Type)
	} else {
		slog.Info("Evaluation history disabled")
	}
	if cfg.Strict {
		opts = append(opts, calc.WithEvaluator(eval.New(eval.WithStrict())))
		slog.Info("Strict evaluation enabled")
	}

	healthChecker := pkgserver.ForBackend(string(cfg.HistoryConfig.Type), store)

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "addsub API is running")
	})

	calcRouter := router.NewCalcRouter(s.Echo, calc.New(opts...))
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		cleanup()
		os.Exit(1)
	}
}
