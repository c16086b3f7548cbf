package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/diewo77/invoicing-api/internal/config"
	"github.com/diewo77/invoicing-api/internal/db"
	"github.com/diewo77/invoicing-api/internal/server"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	downgradeFlag   = flag.String("downgrade", "", "Revert a single named migration and exit")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := newLogger(cfg)
	log.Logger = logger

	if *downgradeFlag != "" {
		conn, err := db.Connect(db.Options{DSN: cfg.DatabaseDSN, Debug: cfg.DBDebug})
		if err != nil {
			logger.Fatal().Err(err).Msg("db connection failed")
		}
		if err := db.Downgrade(conn, *downgradeFlag); err != nil {
			logger.Fatal().Err(err).Msg("downgrade failed")
		}
		return
	}

	conn, err := db.ConnectAndMigrate(db.Options{DSN: cfg.DatabaseDSN, Debug: cfg.DBDebug, Seed: cfg.Seed})
	if err != nil {
		logger.Fatal().Err(err).Msg("db connection failed")
	}
	if *migrateOnlyFlag {
		logger.Info().Msg("migrations completed; exiting as requested")
		return
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(conn, logger)}
	go func() {
		logger.Info().Str("env", cfg.Env).Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("error during shutdown")
	}
	logger.Info().Msg("server gracefully stopped")
}

func newLogger(cfg config.Config) zerolog.Logger {
	if cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
