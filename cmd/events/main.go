// Command events tails CONTENT_SAVED events from the NATS bus.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"portfolio-be/internal/config"
	"portfolio-be/internal/service"
	"portfolio-be/pkg/events"
	pktNats "portfolio-be/pkg/nats"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.Events.NatsURL == "" {
		log.Fatal("NATS_URL is not set")
	}

	sub, err := pktNats.NewSubscriber(cfg.Events.NatsURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = sub.Subscribe(ctx, service.ContentSavedEventType, "", func(_ context.Context, evt events.Event) error {
		data := evt.Payload()
		color.Green("%s  %s", evt.Timestamp().Format("15:04:05"), evt.EventType())
		fmt.Printf("    key=%v size=%v\n", data["key"], data["size"])
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	color.Cyan("Listening for %s on %s", service.ContentSavedEventType, cfg.Events.NatsURL)
	<-ctx.Done()
}
