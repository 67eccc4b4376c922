package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	tclient "go.temporal.io/sdk/client"

	"cognigraph/internal/api"
	"cognigraph/internal/config"
	"cognigraph/internal/dataset"
	"cognigraph/internal/storage"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	pub := dataset.NewPublisher()
	seed(cfg, pub)

	var temporal tclient.Client
	if cfg.TemporalAddress != "" {
		tc, err := tclient.Dial(tclient.Options{HostPort: cfg.TemporalAddress})
		if err != nil {
			log.Printf("temporal unavailable at %s, persistence pipeline disabled: %v", cfg.TemporalAddress, err)
		} else {
			temporal = tc
			defer tc.Close()
		}
	}

	srv := api.New(cfg, pub, temporal)
	log.Printf("cognigraph api listening on %s seed=%q", cfg.APIAddr, cfg.SeedDataset)
	if err := http.ListenAndServe(cfg.APIAddr, srv.Routes()); err != nil {
		log.Fatal(err)
	}
}

// seed publishes an initial dataset: the seed file when present, otherwise
// the persisted copy in Postgres. Starting with no dataset is allowed; the
// API answers 503 until one is uploaded.
func seed(cfg config.Config, pub *dataset.Publisher) {
	if _, err := os.Stat(cfg.SeedDataset); err == nil {
		snap, err := pub.LoadFile(cfg.SeedDataset)
		if err != nil {
			log.Fatalf("seed dataset %s: %v", cfg.SeedDataset, err)
		}
		log.Printf("published seed dataset %s version=%s triples=%d rejected=%d flagged=%d",
			cfg.SeedDataset, snap.Version, snap.Index.TripleCount(), len(snap.Report.Rejected), len(snap.Report.Flagged))
		return
	}
	if cfg.PostgresURL == "" {
		log.Printf("no seed dataset and no postgres configured; waiting for upload")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := storage.NewDB(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer db.Close()
	rows, err := storage.NewTripleRepo(db).ListRows(ctx)
	if err != nil {
		log.Fatalf("load persisted dataset: %v", err)
	}
	if len(rows) == 0 {
		log.Printf("persisted dataset is empty; waiting for upload")
		return
	}
	snap := pub.Publish(rows, "")
	log.Printf("published persisted dataset version=%s triples=%d", snap.Version, snap.Index.TripleCount())
}
