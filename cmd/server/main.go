package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/gustavopk/imobcopy/internal/ai"
	"github.com/gustavopk/imobcopy/internal/compose"
	"github.com/gustavopk/imobcopy/internal/config"
	"github.com/gustavopk/imobcopy/internal/web"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists (for local testing)

	cfg, err := config.Load("imobcopy.yaml")
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	ctx := context.Background()
	aiClient, err := ai.NewAIClient(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.RequestTimeout())
	if err != nil {
		log.Fatalf("Failed to init AI client: %v", err)
	}
	defer aiClient.Close()

	assembler := compose.NewAssembler(cfg.StateAbbrev, cfg.ContactLines)
	server := web.NewServer(aiClient, assembler)

	log.Printf("Listening on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, server.Routes()); err != nil {
		log.Fatalf("Fatal: %v", err)
	}
}
