package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/regform/regform-go/internal/config"
	"github.com/regform/regform-go/internal/crypto"
	"github.com/regform/regform-go/internal/handler"
	"github.com/regform/regform-go/internal/metrics"
	"github.com/regform/regform-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	m := metrics.New()
	digester := crypto.NewDigester(crypto.DefaultDigestParams())
	regService := service.NewRegistrationService(digester, cfg.TokenSecret, cfg.TokenExpiry, m)

	router := handler.Router{
		Registration:   handler.NewRegistrationHandler(regService),
		Generator:      handler.NewGeneratorHandler(service.NewGeneratorService()),
		UI:             handler.NewUIHandler(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))),
		Metrics:        m,
		TokenSecret:    cfg.TokenSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
