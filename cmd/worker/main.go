package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"cognigraph/internal/activities"
	"cognigraph/internal/config"
	"cognigraph/internal/storage"
	"cognigraph/internal/workflows"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	c, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var db *storage.DB
	if cfg.PostgresURL != "" {
		db, err = storage.NewDB(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
	}
	neo, err := storage.NewNeo4jStore(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword, cfg.Neo4jDatabase)
	if err != nil {
		log.Fatal(err)
	}
	if neo != nil {
		defer neo.Close(context.Background())
	}

	w := worker.New(c, cfg.TemporalTaskQueue, worker.Options{})
	workflows.Register(w)
	activities.Register(w, activities.New(cfg, db, neo))

	log.Printf("cognigraph worker listening on %s queue=%s postgres=%t neo4j=%t",
		cfg.TemporalAddress, cfg.TemporalTaskQueue, db != nil, neo != nil)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatal(err)
	}
}
