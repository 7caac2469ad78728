package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/evidenceml/blindspot/internal/analyzer"
	"github.com/evidenceml/blindspot/internal/blindspot"
	"github.com/evidenceml/blindspot/internal/config"
	"github.com/evidenceml/blindspot/internal/extract"
	"github.com/evidenceml/blindspot/internal/llm"
	"github.com/evidenceml/blindspot/internal/retrieval"
	"github.com/evidenceml/blindspot/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	retriever, err := retrieval.NewClient(&cfg.Retrieval)
	if err != nil {
		log.Fatalf("failed to create retrieval client: %v", err)
	}

	// Backend selection happens once here; a missing credential demotes
	// the client to its mock backend, never fails startup.
	client := llm.New(&cfg.OpenAI)

	var anlz analyzer.Analyzer
	if cfg.Analysis.UseModel {
		anlz = analyzer.NewModel(client, extract.New(), cfg.Analysis.MaxPromptChars)
	} else {
		anlz = analyzer.NewHeuristic()
	}
	slog.Info("population analyzer configured", "model_mode", cfg.Analysis.UseModel, "backend", client.Backend())

	srv := server.New(*cfg, retriever, anlz, blindspot.NewDetector())
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
