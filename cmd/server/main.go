package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/me/folio/internal/config"
	"github.com/me/folio/internal/logging"
	"github.com/me/folio/internal/server"
	"github.com/me/folio/internal/store"
	"github.com/me/folio/internal/upload"
)

func main() {
	cfg := config.DefaultServerConfig()
	cfg.FromEnv()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Database path (default ~/.folio/folio.db)")
	flag.StringVar(&cfg.Env, "env", cfg.Env, "Environment: development or production")
	flag.StringVar(&cfg.SitePath, "site-config", cfg.SitePath, "Path to YAML site config")
	flag.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "S3 bucket for uploads (empty serves uploads from memory)")
	flag.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "AWS region for the upload bucket")
	flag.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "Directory served under /static")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// Resolve database path.
	dbPath := cfg.DBPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot determine home directory: %v\n", err)
			os.Exit(1)
		}
		dir := filepath.Join(home, ".folio")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", dir, err)
			os.Exit(1)
		}
		dbPath = filepath.Join(dir, "folio.db")
	}

	// Open store and run migrations.
	st, err := store.NewSQLiteStore(dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("database ready", "path", dbPath)

	site, err := config.LoadSiteConfig(cfg.SitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "site config: %v\n", err)
		os.Exit(1)
	}

	// Asset uploads go to S3 when a bucket is configured, otherwise to an
	// in-process store useful for local development.
	var uploader upload.Uploader
	if cfg.S3Bucket != "" {
		uploader, err = upload.NewS3UploaderFromEnv(context.Background(),
			cfg.S3Bucket, cfg.S3Region, cfg.S3Prefix, cfg.BaseAssetURL, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "s3 uploader: %v\n", err)
			os.Exit(1)
		}
		logger.Info("uploads to s3", "bucket", cfg.S3Bucket, "region", cfg.S3Region)
	} else {
		uploader = upload.NewMemoryUploader("")
		logger.Info("uploads to in-process memory store")
	}

	srv, err := server.New(cfg, site, st, logger, server.WithUploader(uploader))
	if err != nil {
		fmt.Fprintf(os.Stderr, "create server: %v\n", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", cfg.Addr, "env", cfg.Env)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
