package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/nwittstock/folio/internal/api"
	"github.com/nwittstock/folio/internal/board"
	"github.com/nwittstock/folio/internal/config"
	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/domain/task"
	"github.com/nwittstock/folio/internal/mcp"
	"github.com/nwittstock/folio/internal/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetLevel(parseLogLevel(cfg.Log.Level))
	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	if cfg.Transport.Mode == "stdio" {
		logger.SetOutput(os.Stderr)
	}

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.WithError(err).Fatal("failed to prepare database path")
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("failed to run migrations")
	}

	taskRepo := sqlite.NewTaskRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)

	taskSvc := task.NewService(taskRepo, logger)
	projectSvc := project.NewService(projectRepo, logger)

	b := board.New(taskSvc, projectSvc)

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(logger, b)
	} else {
		runHTTPMode(logger, b, cfg.Server.Host, cfg.Server.Port)
	}
}

func runStdioMode(logger *logrus.Logger, b *board.Board) {
	logger.Info("starting stdio transport")

	mcpServer := mcp.NewServer(b)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or the context is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.WithError(err).Fatal("stdio server error")
	}
}

func runHTTPMode(logger *logrus.Logger, b *board.Board, host string, port int) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	api.Register(e, b, logger)

	addr := fmt.Sprintf("%s:%d", host, port)

	go func() {
		logger.WithField("addr", addr).Info("server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("server error")
		}
	}()

	waitForShutdown(logger, e)
}

func waitForShutdown(logger *logrus.Logger, e *echo.Echo) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := e.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("shutdown error")
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
