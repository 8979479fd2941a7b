package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"slate-seo/pkg/assistant"
	"slate-seo/pkg/sitemap"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := s.sitemap.Entries(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("sitemap query failed")
		http.Error(w, "failed to build sitemap", http.StatusInternalServerError)
		return
	}

	body, err := sitemap.Render(entries)
	if err != nil {
		s.log.Error().Err(err).Msg("sitemap render failed")
		http.Error(w, "failed to build sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleAIPublic(w http.ResponseWriter, r *http.Request) {
	var req assistant.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	resp, err := s.ai.Process(r.Context(), req)
	switch {
	case errors.Is(err, assistant.ErrNotConfigured):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "OpenAI API key is not configured"})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Failed to process AI request"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
