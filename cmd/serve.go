package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "github.com/jmin1219/taskflow/internal/configs"
	"github.com/jmin1219/taskflow/internal/export"
	httpapi "github.com/jmin1219/taskflow/internal/http"
	"github.com/jmin1219/taskflow/internal/logging"
	repository "github.com/jmin1219/taskflow/internal/repositories"
	"github.com/jmin1219/taskflow/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the TaskFlow REST API and serves the static front end",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logger := logging.New(cfg.LogLevel)

		database := config.New(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)
		taskService := services.NewTaskService(taskRepo)
		exporter := export.NewExporter(taskService)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(taskService, exporter)
		httpapi.Register(e, handler, cfg.RateLimit, cfg.StaticDir)

		go func() {
			logger.Info("HTTP server listening", "addr", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Warn("server stopped", "err", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
