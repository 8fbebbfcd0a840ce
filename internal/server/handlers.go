package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "options-sentinel",
	})
}

// handleTriageReport returns the latest full triage report.
func (s *Server) handleTriageReport(w http.ResponseWriter, r *http.Request) {
	report := s.cache.Latest()
	if report == nil {
		s.writeError(w, http.StatusServiceUnavailable, "no triage report yet; try POST /api/triage/refresh")
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// handleTriageSymbol returns the report entries for one underlying.
func (s *Server) handleTriageSymbol(w http.ResponseWriter, r *http.Request) {
	report := s.cache.Latest()
	if report == nil {
		s.writeError(w, http.StatusServiceUnavailable, "no triage report yet; try POST /api/triage/refresh")
		return
	}

	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))
	matches := report.Positions[:0:0]
	for _, p := range report.Positions {
		if p.Cluster.Underlying == symbol {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		s.writeError(w, http.StatusNotFound, "no positions for "+symbol)
		return
	}
	s.writeJSON(w, http.StatusOK, matches)
}

// handleTriageRefresh runs the triage pipeline on demand.
func (s *Server) handleTriageRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.refresher.Run(); err != nil {
		s.log.Error().Err(err).Msg("On-demand triage refresh failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, s.cache.Latest())
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
