package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/joho/godotenv"

	"dining-status-backend/config"
	"dining-status-backend/internal/api"
	"dining-status-backend/internal/clock"
	"dining-status-backend/internal/db"
	"dining-status-backend/internal/menu"
	"dining-status-backend/internal/notify"
	"dining-status-backend/internal/prefs"
	"dining-status-backend/internal/schedule"
	"dining-status-backend/internal/sim"
	"dining-status-backend/internal/station"
)

func main() {
	logger := log.New(os.Stdout, "dining-backend ", log.LstdFlags)

	// Optional .env for local development; a missing file is fine.
	if err := godotenv.Load(); err == nil {
		logger.Println(".env file loaded")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	loc := time.Local
	if cfg.Simulation.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Simulation.Timezone)
		if err != nil {
			logger.Fatalf("failed to load timezone %q: %v", cfg.Simulation.Timezone, err)
		}
	}
	clk := clock.System(loc)

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := sim.NewRand(seed)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Missing VAPID keys mean the notification capability is absent; the
	// gate then reports permission denied instead of the process failing.
	var webpushOptions *webpush.Options
	if cfg.Push.PublicKey != "" && cfg.Push.PrivateKey != "" {
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
	} else {
		logger.Println("VAPID keys are not configured; push notifications are disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	simulator := sim.New(clk, rng)
	catalog := menu.NewCatalog(clk)
	stations := station.New(simulator, catalog, rng)

	platform := notify.NewWebPush(cfg.WorkerPool.Size, gormDB, webpushOptions)
	platform.Start(ctx)

	prefStore := prefs.NewGormStore(gormDB)
	gate := notify.NewGate(platform, prefStore, simulator, clk, cfg.Notify.Cooldown)

	checkTask := schedule.Every(ctx, cfg.Notify.CheckInterval, gate.CheckAndNotify)
	logger.Printf("notification check scheduled every %s", cfg.Notify.CheckInterval)

	handler := api.NewHandler(simulator, stations, catalog, gate, platform, clk, gormDB, webpushOptions)
	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	checkTask.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
