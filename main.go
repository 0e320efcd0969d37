package main

import (
	"context"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/deepak-5656/wanderease/internal/app"
	"github.com/deepak-5656/wanderease/internal/config"
	"github.com/deepak-5656/wanderease/internal/observability"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log.Init(cfg.LogrusLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	traceProvider, err := observability.ConfigureTraceProvider(cfg.JaegerEndpoint)
	if err != nil {
		logrus.WithError(err).Fatal("failed to configure tracing")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = traceProvider.Shutdown(shutdownCtx)
	}()

	db, err := sqlx.Open("postgres", cfg.PostgresURL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer redisClient.Close()

	watermillLogger := log.NewWatermill(logrus.NewEntry(logrus.StandardLogger()))

	a, err := app.NewApp(cfg, watermillLogger, db, redisClient)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create app")
	}

	err = a.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("app stopped with error")
		os.Exit(1)
	}
}
