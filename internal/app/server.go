package app

import (
	"encoding/json"
	"net/http"

	"newskill/internal/media"
	"newskill/internal/metrics"
	"newskill/internal/ratelimit"
	"newskill/internal/search"
	"newskill/internal/settings"
)

// Server exposes the skill over HTTP: /search for hosts, /health and
// /metrics for monitoring, /settings for preference updates.
type Server struct {
	skill  *search.Skill
	store  settings.Store
	budget *ratelimit.Budget
}

func NewServer(skill *search.Skill, store settings.Store, budget *ratelimit.Budget) *Server {
	return &Server{skill: skill, store: store, budget: budget}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", s.searchHandler)
	mux.HandleFunc("/settings", s.settingsHandler)
	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/metrics", s.metricsHandler)
	return mux
}

type searchRequest struct {
	Phrase    string `json:"phrase"`
	MediaType string `json:"media_type"`
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest

	switch r.Method {
	case http.MethodGet:
		req.Phrase = r.URL.Query().Get("phrase")
		req.MediaType = r.URL.Query().Get("media_type")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if req.Phrase == "" {
		http.Error(w, "phrase is required", http.StatusBadRequest)
		return
	}

	results := s.skill.Search(r.Context(), req.Phrase, media.ParseType(req.MediaType))
	if results == nil {
		results = []search.Result{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

type settingsRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.store.Set(req.Key, req.Value); err != nil {
		http.Error(w, "failed to store setting", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()
	if s.budget != nil {
		stats["fetch_budget"] = s.budget.Stats()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
