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

	"github.com/rs/zerolog"

	"github.com/BerretW/BatteryGuard-sub000/config"
	"github.com/BerretW/BatteryGuard-sub000/internal/api"
	"github.com/BerretW/BatteryGuard-sub000/internal/auth"
	"github.com/BerretW/BatteryGuard-sub000/internal/db"
	"github.com/BerretW/BatteryGuard-sub000/internal/ident"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
	"github.com/BerretW/BatteryGuard-sub000/internal/store"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", configPath).Msg("failed to load configuration")
	}
	logger.Info().Str("path", configPath).Msg("configuration loaded")

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal().Msg("auth.jwt_secret must be configured")
	}

	gormDB, err := db.Init(&cfg.Database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	logger.Info().Msg("database initialized")

	appStore := store.NewGormStore(gormDB, ident.UUID{})
	authSvc := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	if cfg.Auth.SeedAdmin.Enabled {
		if err := seedAdmin(context.Background(), appStore, authSvc, cfg.Auth.SeedAdmin, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed admin account")
		}
	}

	router := api.NewRouter(appStore, authSvc, &cfg.Server, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server shutdown failed")
	}
	logger.Info().Msg("server stopped")
}

// seedAdmin creates the configured admin account on first start. An
// existing account with the same email is left untouched.
func seedAdmin(ctx context.Context, s store.Store, authSvc *auth.Service, seed config.SeedAdmin, logger zerolog.Logger) error {
	_, err := s.GetUserByEmail(ctx, seed.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := authSvc.HashPassword(seed.Password)
	if err != nil {
		return err
	}

	admin := model.User{
		Name:         seed.Name,
		Email:        seed.Email,
		Role:         model.RoleAdmin,
		IsAuthorized: true,
		PasswordHash: hash,
	}
	if err := s.CreateUser(ctx, &admin); err != nil {
		return err
	}
	logger.Info().Str("email", seed.Email).Msg("seeded admin account")
	return nil
}
