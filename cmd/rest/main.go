package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"portfolio-be/internal/bootstrap"
	"portfolio-be/internal/config"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/server"
	"portfolio-be/internal/tracer"

	"github.com/fatih/color"
)

func main() {
	ctx := context.Background()

	// 0. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(ctx)
	defer shutdownTracer(ctx)

	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Content store backend
	repo, closeStore, err := bootstrap.OpenStore(ctx, cfg.Store)
	if err != nil {
		log.Panicf("Unable to open %s store: %v", cfg.Store.Driver, err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, repo, sysLogger, bootstrap.Options{})
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	container.AddCloser(closeStore)
	defer container.Close()

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Panicf("Unable to start content event consumer: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		color.Yellow("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	color.Cyan("Portfolio backend")
	color.White("  store:   %s", cfg.Store.Driver)
	color.White("  events:  %s", eventsMode(cfg))
	color.Green("  listen:  http://localhost:%s", cfg.App.Port)

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

func eventsMode(cfg *config.Config) string {
	if cfg.Events.NatsURL == "" {
		return "in-process"
	}
	return "in-process + nats " + cfg.Events.NatsURL
}
