package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/eringen/showcase"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("showcase %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// loadConfig reads .env when present and builds the site config from SITE_*
// variables.
func loadConfig() showcase.SiteConfig {
	_ = godotenv.Load()
	return showcase.SiteConfig{
		Owner:          showcase.EnvOr("SITE_OWNER", ""),
		Accent:         showcase.EnvOr("SITE_ACCENT", ""),
		Description:    showcase.EnvOr("SITE_DESCRIPTION", ""),
		URL:            showcase.EnvOr("SITE_URL", ""),
		Email:          showcase.EnvOr("SITE_EMAIL", "contact@bharath.com"),
		PortfolioURL:   showcase.EnvOr("SITE_PORTFOLIO_URL", ""),
		PortfolioLabel: showcase.EnvOr("SITE_PORTFOLIO_LABEL", ""),
		Addr:           showcase.EnvOr("SITE_ADDR", ""),
		StaticDir:      showcase.EnvOr("SITE_STATIC_DIR", ""),
		LogLevel:       showcase.EnvOr("LOG_LEVEL", ""),
	}
}

func runServe() error {
	cfg := loadConfig()
	logger := showcase.NewLogger(cfg.LogLevel)
	app := showcase.New(cfg, showcase.WithLogger(logger))
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Echo.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("shutdown", zap.Error(err))
		return err
	}
	return nil
}

func printUsage() {
	fmt.Println(`showcase - an animated portfolio landing page built with Go, Echo, and htmx

Usage:
  showcase [command]

Commands:
  serve         Start the web server (default)
  version       Print the showcase version
  help          Show this help message

Environment:
  SITE_OWNER, SITE_ACCENT, SITE_DESCRIPTION, SITE_URL, SITE_EMAIL,
  SITE_PORTFOLIO_URL, SITE_PORTFOLIO_LABEL, SITE_ADDR, SITE_STATIC_DIR,
  LOG_LEVEL`)
}
