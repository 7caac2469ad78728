package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/evidenceml/blindspot/apimodels"
	"github.com/evidenceml/blindspot/internal/llm"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Disease == "" {
		http.Error(w, "disease query is required", http.StatusBadRequest)
		return
	}

	runID := uuid.NewString()
	start := time.Now()
	slog.Info("starting analysis run", "id", runID, "disease", req.Disease)

	limit := s.cfg.Retrieval.MaxPapers
	if req.Options.MaxPapers > 0 && req.Options.MaxPapers < limit {
		limit = req.Options.MaxPapers
	}

	papers, err := s.retriever.Search(r.Context(), req.Disease, limit)
	if err != nil {
		slog.Error("literature retrieval failed", "id", runID, "error", err)
		http.Error(w, "literature retrieval failed", http.StatusBadGateway)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), papers, req.Disease,
		llm.WithModel(req.Options.Model), llm.WithMaxTokens(req.Options.MaxTokens))
	if err != nil {
		slog.Error("analysis failed", "id", runID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := apimodels.AnalysisResponse{
		Breakdown:  result.Breakdown,
		BlindSpots: s.detector.Detect(result.Breakdown),
		Metadata: apimodels.AnalysisMetadata{
			ID:         runID,
			Duration:   time.Since(start).String(),
			Backend:    result.Backend,
			Model:      result.Model,
			TokensUsed: result.TokensUsed,
			Mode:       result.Mode,
			Papers:     len(papers),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
