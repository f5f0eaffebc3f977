package main

import (
	"context"
	"log"
	"net"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"coopman/internal/config"
	handlers "coopman/internal/http/handler"
	"coopman/internal/http/middleware"
	"coopman/internal/launcher"
	"coopman/internal/nexus"
	"coopman/internal/otel"
	"coopman/internal/saves"
	"coopman/internal/service"
	"coopman/internal/steam"
	"coopman/internal/store/lemondb"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	url := "http://" + addr

	// A second instance is pointless: reuse the one already running.
	if conn, err := net.DialTimeout("tcp", addr, 300*time.Millisecond); err == nil {
		conn.Close()
		log.Printf("already running at %s, opening browser", url)
		_ = launcher.OpenBrowser(url)
		return
	}

	shutdown, err := otel.Init(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	// Embedded state database.
	st, err := lemondb.Open(cfg.StatePath)
	if err != nil {
		log.Fatalf("failed to open state database: %v", err)
	}
	defer st.Close()

	// Clients and services.
	webAPI := steam.NewWebAPI(cfg.Steam.APIBase, cfg.Steam.CDNBase,
		time.Duration(cfg.Steam.TimeoutSec)*time.Second)
	nexusClient := nexus.NewClient(cfg.Nexus.APIBase, cfg.Nexus.APIKey,
		time.Duration(cfg.Nexus.TimeoutSec)*time.Second)
	scanner := &steam.Scanner{}

	gameSvc := service.NewGameService(st, scanner, webAPI, cfg.IconsDir)
	saveSvc := service.NewSaveService(gameSvc, &saves.Manager{})
	modSvc := service.NewModService(st, gameSvc, nexusClient, cfg.DownloadsDir)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Global middleware: tracing, request IDs, JSON request logs, metrics.
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, gameSvc, saveSvc, modSvc, prometheus.DefaultGatherer)

	if cfg.OpenBrowser {
		go func() {
			time.Sleep(500 * time.Millisecond)
			_ = launcher.OpenBrowser(url)
		}()
	}

	log.Printf("listening on %s", url)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
