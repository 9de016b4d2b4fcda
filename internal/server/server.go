package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/yapay-ai/model-scout/pkg/catalog"
	"github.com/yapay-ai/model-scout/pkg/embed"
	"github.com/yapay-ai/model-scout/pkg/ingest"
	"github.com/yapay-ai/model-scout/pkg/store"
)

// Server exposes the catalog over HTTP. Records come from the ingest
// pipeline, so the first request of a day may trigger a scrape and
// subsequent ones hit the dated snapshot. The semantic index and the
// history storage are optional.
type Server struct {
	pipeline *ingest.Pipeline
	index    *embed.Index
	storage  store.Storage
	mux      *http.ServeMux
	logger   *slog.Logger
}

// NewServer creates an API server. index may be nil when semantic
// search is disabled; storage may be nil when history is not kept.
func NewServer(p *ingest.Pipeline, index *embed.Index, storage store.Storage, logger *slog.Logger) *Server {
	s := &Server{
		pipeline: p,
		index:    index,
		storage:  storage,
		mux:      http.NewServeMux(),
		logger:   logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /api/v1/models", s.handleModels)
	s.mux.HandleFunc("GET /api/v1/search", s.handleSearch)
	s.mux.HandleFunc("GET /api/v1/stats", s.handleStats)
	s.mux.HandleFunc("GET /api/v1/history", s.handleHistory)
}

// Handler returns the HTTP handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	records, ok := s.records(w, r)
	if !ok {
		return
	}

	filter := catalog.Filter{
		Provider:  r.URL.Query().Get("provider"),
		Category:  catalog.Category(r.URL.Query().Get("category")),
		FreeOnly:  r.URL.Query().Get("free") == "true",
		Substring: r.URL.Query().Get("q"),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog.Apply(records, filter))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.index == nil {
		http.Error(w, "semantic search disabled", http.StatusServiceUnavailable)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "missing query parameter q", http.StatusBadRequest)
		return
	}
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	results, err := s.index.Search(ctx, query, k)
	if err != nil {
		s.logger.Error("semantic search", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// Stats summarizes the current catalog by pricing tier.
type Stats struct {
	Total      int            `json:"total"`
	Free       int            `json:"free"`
	Categories map[string]int `json:"categories"`
	Providers  int            `json:"providers"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	records, ok := s.records(w, r)
	if !ok {
		return
	}

	stats := Stats{
		Total:      len(records),
		Categories: make(map[string]int),
	}
	providers := make(map[string]struct{})
	for _, rec := range records {
		stats.Categories[string(rec.Category)]++
		if rec.IsFree {
			stats.Free++
		}
		providers[rec.Provider] = struct{}{}
	}
	stats.Providers = len(providers)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.storage == nil {
		http.Error(w, "history disabled", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	runs, err := s.storage.ListRuns(ctx, limit)
	if err != nil {
		s.logger.Error("list scrape runs", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

func (s *Server) records(w http.ResponseWriter, r *http.Request) ([]catalog.Record, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	res, err := s.pipeline.Run(ctx)
	if err != nil {
		s.logger.Error("load catalog", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return res.Records, true
}
