package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIAddr           string
	TemporalAddress   string
	TemporalTaskQueue string
	PostgresURL       string
	Neo4jURI          string
	Neo4jUser         string
	Neo4jPassword     string
	Neo4jDatabase     string
	DataInRoot        string
	DataOutRoot       string
	SeedDataset       string
	UploadMaxMB       int
}

func Load() Config {
	return Config{
		APIAddr:           getenv("COGNIGRAPH_API_ADDR", ":8080"),
		TemporalAddress:   getenv("COGNIGRAPH_TEMPORAL_ADDRESS", "localhost:7233"),
		TemporalTaskQueue: getenv("COGNIGRAPH_TEMPORAL_TASK_QUEUE", "cognigraph"),
		PostgresURL:       getenv("COGNIGRAPH_POSTGRES_URL", ""),
		Neo4jURI:          getenv("COGNIGRAPH_NEO4J_URI", ""),
		Neo4jUser:         getenv("COGNIGRAPH_NEO4J_USER", "neo4j"),
		Neo4jPassword:     getenv("COGNIGRAPH_NEO4J_PASSWORD", ""),
		Neo4jDatabase:     getenv("COGNIGRAPH_NEO4J_DATABASE", ""),
		DataInRoot:        getenv("COGNIGRAPH_DATA_IN", "./data/in"),
		DataOutRoot:       getenv("COGNIGRAPH_DATA_OUT", "./data/out"),
		SeedDataset:       getenv("COGNIGRAPH_SEED_DATASET", "./data/alzheimer_kg.csv"),
		UploadMaxMB:       getenvInt("COGNIGRAPH_UPLOAD_MAX_MB", 32),
	}
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
