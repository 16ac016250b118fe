package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/uno-dare/server/network"
	"github.com/uno-dare/server/room"
	"github.com/uno-dare/server/store"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	cfg := room.Config{Logger: log}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		cfg.Store = store.NewRedis(client)
		log.WithField("addr", redisAddr).Info("using redis store")
	} else {
		cfg.Store = store.NewMemory()
		log.Info("using in-memory store")
	}

	if daresFile := os.Getenv("DARES_FILE"); daresFile != "" {
		dares, err := room.LoadDares(daresFile)
		if err != nil {
			log.WithError(err).Fatal("load dares")
		}
		cfg.Dares = dares
	}

	if timeout := os.Getenv("AI_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			log.WithError(err).Fatal("parse AI_TIMEOUT")
		}
		cfg.AdvisorTimeout = d
	}

	room.RegisterLogListener(log)
	registry := room.NewRegistry(cfg)
	server := network.NewWebsocketServer(envOr("ADDR", ":9999"), registry, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(ctx)
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
