package main

import (
	"context"
	"flag"
	"log"

	"portfolio-be/internal/bootstrap"
	"portfolio-be/internal/config"
	"portfolio-be/internal/content"
	"portfolio-be/internal/contentstore"
	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"
)

// Copies the bundled writing and experience lists into the configured store so
// the admin editors start from the published content instead of an empty list.
func main() {
	force := flag.Bool("force", false, "overwrite collections that already hold records")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	repo, closeStore, err := bootstrap.OpenStore(ctx, cfg.Store)
	if err != nil {
		log.Fatal("Error: Failed to open store:", err)
	}
	defer closeStore()

	defaults, err := content.Default()
	if err != nil {
		log.Fatal("Error: Bundled content is invalid:", err)
	}

	store := contentstore.New(repo, contentstore.NewAcknowledger(contentstore.AckTTL), logger.NewNopLogger())

	seed(ctx, contentstore.NewCollection[entity.Post](store, contentstore.KeyPosts), defaults.Writing, *force)
	seed(ctx, contentstore.NewCollection[entity.ExperienceEntry](store, contentstore.KeyExperiences), defaults.Experience, *force)

	log.Println("Seeding completed.")
}

func seed[T any](ctx context.Context, coll *contentstore.Collection[T], records []T, force bool) {
	existing, err := coll.Load(ctx)
	if err != nil {
		log.Fatalf("Error: Failed to read %s: %v", coll.Key(), err)
	}
	if len(existing) > 0 && !force {
		log.Printf("%s already has %d records, skipping...", coll.Key(), len(existing))
		return
	}
	if err := coll.Save(ctx, records); err != nil {
		log.Fatalf("Error: Failed to seed %s: %v", coll.Key(), err)
	}
	log.Printf("Seeded %s with %d records", coll.Key(), len(records))
}
