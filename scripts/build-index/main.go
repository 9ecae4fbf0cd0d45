package main

import (
	"context"
	"fmt"
	"os"

	"clinic-assistant/config"
	"clinic-assistant/internal/knowledge"
	"clinic-assistant/pkg/log"
	pkgQdrant "clinic-assistant/pkg/qdrant"
	"clinic-assistant/pkg/voyage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/build-index/main.go <path/to/corpus.csv>")
		fmt.Println("Example: go run scripts/build-index/main.go data/clinic_qa.csv")
		os.Exit(1)
	}
	corpusPath := os.Args[1]

	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Initialize clients
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	index := knowledge.NewIndex(qdrantClient, embeddingClient,
		cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)

	logger.Infof(ctx, "Loading corpus from %s...", corpusPath)

	docs, err := knowledge.LoadCorpus(corpusPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load corpus: %v", err)
	}
	logger.Infof(ctx, "Loaded %d documents", len(docs))

	if err := index.Build(ctx, docs); err != nil {
		logger.Fatalf(ctx, "Failed to build index: %v", err)
	}

	logger.Infof(ctx, "Index build complete! Collection %s is ready.", cfg.Qdrant.CollectionName)
}
