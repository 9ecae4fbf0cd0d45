package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-assistant/config"
	_ "clinic-assistant/docs" // Swagger docs
	"clinic-assistant/internal/advice"
	assistantHTTP "clinic-assistant/internal/assistant/delivery/http"
	assistantUC "clinic-assistant/internal/assistant/usecase"
	"clinic-assistant/internal/classifier"
	"clinic-assistant/internal/conversation"
	"clinic-assistant/internal/dataquery"
	"clinic-assistant/internal/httpserver"
	"clinic-assistant/internal/knowledge"
	"clinic-assistant/internal/middleware"
	"clinic-assistant/internal/workflow"
	"clinic-assistant/pkg/llmprovider"
	"clinic-assistant/pkg/log"
	"clinic-assistant/pkg/qdrant"
	"clinic-assistant/pkg/sqldb"
	"clinic-assistant/pkg/voyage"
)

// @title       Clinic Assistant API
// @description Conversational assistant for a medical clinic. Routes questions to medical advice or database lookups.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Clinic Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider stack
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	llmManager := llmprovider.NewManager(providers, llmprovider.NewConfig(&cfg.LLM), logger)
	logger.Infof(ctx, "LLM providers initialized: %d enabled", len(providers))

	// 4. Clinic database
	clinicDB, err := sqldb.Open(cfg.ClinicDB.Driver, cfg.ClinicDB.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open clinic database: %v", err)
	}
	defer clinicDB.Close()
	logger.Infof(ctx, "Clinic database connected (%s)", cfg.ClinicDB.Driver)

	// 5. Knowledge retrieval (optional, advice degrades without it)
	var retriever knowledge.Retriever
	if cfg.Qdrant.URL != "" && cfg.Voyage.APIKey != "" {
		embeddingClient, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", vErr)
		}
		qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
		retriever = knowledge.NewIndex(qdrantClient, embeddingClient,
			cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
		logger.Infof(ctx, "Knowledge retrieval enabled (collection=%s)", cfg.Qdrant.CollectionName)
	} else {
		logger.Warn(ctx, "QDRANT_URL or VOYAGE_API_KEY missing, advice answers will not be grounded")
	}

	// 6. Checkpoint store
	store, err := conversation.NewMemoryStore(cfg.Assistant.CheckpointCapacity)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create checkpoint store: %v", err)
	}

	// 7. Workflow graph
	window := cfg.Assistant.HistoryWindow
	intentClassifier := classifier.New(llmManager, logger, window)
	adviceNode := advice.New(llmManager, retriever, logger, window, cfg.Assistant.RetrievalTopK)
	writeQueryNode := dataquery.NewWriter(llmManager, clinicDB, logger, window)
	synthesizeNode := dataquery.NewSynthesizer(llmManager, logger, window)

	turnTimeout, err := time.ParseDuration(cfg.Assistant.TurnTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid turn timeout %q, running without one: %v", cfg.Assistant.TurnTimeout, err)
		turnTimeout = 0
	}

	graph, err := workflow.New(
		intentClassifier,
		store,
		[]workflow.Node{adviceNode, writeQueryNode, synthesizeNode},
		map[classifier.Category]string{
			classifier.CategoryMedical: adviceNode.Name(),
			classifier.CategoryQuery:   writeQueryNode.Name(),
		},
		map[string]string{
			writeQueryNode.Name(): synthesizeNode.Name(),
		},
		logger,
		turnTimeout,
	)
	if err != nil {
		logger.Fatalf(ctx, "Failed to build workflow graph: %v", err)
	}

	// 8. Assistant domain
	uc := assistantUC.New(graph, logger)
	handler := assistantHTTP.New(logger, uc)
	mw := middleware.New(logger, middleware.DefaultRequestsPerSecond, middleware.DefaultBurst)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: handler,
		Middleware:       mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
