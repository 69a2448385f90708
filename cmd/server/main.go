package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"

	"github.com/umenyi-bryan/Hackarena/internal/chat"
	"github.com/umenyi-bryan/Hackarena/internal/config"
	"github.com/umenyi-bryan/Hackarena/internal/random"
	"github.com/umenyi-bryan/Hackarena/internal/server"
	"github.com/umenyi-bryan/Hackarena/internal/store"
)

func main() {
	// 1. Config & Flags
	cfg := config.Load()
	addr := flag.String("addr", cfg.Addr, "http service address")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.LogLevel, TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := random.NewCrypto()

	secret := cfg.SecretKey
	if secret == "" {
		secret = gen.Hex(32)
		logger.Warn("SECRET_KEY not set, session tokens will not survive a restart")
	}

	// 2. State
	st, err := store.New(gen, cfg.MaxRooms)
	if err != nil {
		logger.Error("failed to initialise store", "error", err)
		os.Exit(1)
	}

	// 3. Live chat fan-out: Redis when configured, otherwise in-process.
	hub := chat.NewHub(logger)
	go hub.Run(ctx)

	var broadcaster chat.Broadcaster = hub
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Error("failed to connect to Redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		logger.Info("connected to Redis", "addr", cfg.RedisAddr)

		rb := chat.NewRedisBroadcaster(redisClient, hub, logger)
		go rb.Subscribe(ctx)
		broadcaster = rb
	}

	// 4. Routes
	handlers := server.NewHandlers(server.Deps{
		Store:       st,
		Rand:        gen,
		Secret:      secret,
		Hub:         hub,
		Broadcaster: broadcaster,
		Logger:      logger,
	})
	router := server.NewRouter(handlers, logger, true)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("HackArena starting", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HackArena stopped")
}
