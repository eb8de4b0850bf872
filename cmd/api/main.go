package main

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tozoll/legal-ai-analyzer/internal/analyzer"
	apiserver "github.com/tozoll/legal-ai-analyzer/internal/api/server"
	"github.com/tozoll/legal-ai-analyzer/internal/archive"
	"github.com/tozoll/legal-ai-analyzer/internal/config"
	"github.com/tozoll/legal-ai-analyzer/internal/metrics"
	"github.com/tozoll/legal-ai-analyzer/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting LexAI API Server...")

	cfg := config.Load()

	users := store.NewUserStore(filepath.Join(cfg.Data.Dir, "users.json"), cfg.Admin.Username, cfg.Admin.PasswordHash)
	logs := store.NewLogStore(filepath.Join(cfg.Data.Dir, "logs.json"))
	arch := archive.New(cfg)

	// The analyzer stays nil without a credential; the pipeline then fails
	// each request with an operator-facing configuration error.
	var an analyzer.ContractAnalyzer
	if cfg.Anthropic.APIKey != "" {
		an = analyzer.New(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens, cfg.Anthropic.Timeout)
	} else {
		log.Println("WARNING: ANTHROPIC_API_KEY is not set, analysis requests will fail")
	}

	metrics.Register()
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/_metrics", promhttp.Handler())
		log.Printf("Metrics exposed at http://localhost%s/_metrics", cfg.Server.MetricsAddr)
		if err := http.ListenAndServe(cfg.Server.MetricsAddr, mux); err != nil {
			log.Printf("Metrics server error: %v", err)
		}
	}()

	srv := apiserver.New(cfg, users, logs, arch, an)

	log.Printf("API Server starting on %s", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
