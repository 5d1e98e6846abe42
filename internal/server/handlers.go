package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{Error: &apiError{Code: code, Message: message}})
}

func (s *Server) notFound(w http.ResponseWriter, kind, id string) {
	s.logger.Debug("unknown id", zap.String("kind", kind), zap.String("id", id))
	respondError(w, http.StatusNotFound, "not_found", kind+" "+id+" not found")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	s.metrics.ObserveRender("dashboard")
	respondJSON(w, http.StatusOK, s.renderer.Dashboard(s.lib))
}

func (s *Server) handleResults(w http.ResponseWriter, _ *http.Request) {
	s.metrics.ObserveRender("results")
	respondJSON(w, http.StatusOK, s.renderer.Results(s.lib.Results()))
}

func (s *Server) handleListStandards(w http.ResponseWriter, _ *http.Request) {
	s.metrics.ObserveRender("standards")
	respondJSON(w, http.StatusOK, s.renderer.Standards(s.lib.Standards().List()))
}

func (s *Server) handleGetStandard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := s.renderer.StandardDetail(s.lib, id)
	if !ok {
		s.notFound(w, "standard", id)
		return
	}
	s.metrics.ObserveRender("standard")
	respondJSON(w, http.StatusOK, d)
}

func (s *Server) handleListExamples(w http.ResponseWriter, _ *http.Request) {
	s.metrics.ObserveRender("examples")
	respondJSON(w, http.StatusOK, s.renderer.Examples(s.lib.Examples().List()))
}

func (s *Server) handleGetExample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	it, ok := s.lib.Examples().Get(id)
	if !ok {
		s.notFound(w, "example", id)
		return
	}
	s.metrics.ObserveRender("example")
	respondJSON(w, http.StatusOK, s.renderer.ExampleCard(it))
}

func (s *Server) handleListTests(w http.ResponseWriter, _ *http.Request) {
	s.metrics.ObserveRender("tests")
	respondJSON(w, http.StatusOK, s.renderer.Tests(s.lib))
}

func (s *Server) handleGetTest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	it, ok := s.lib.Tests().Get(id)
	if !ok {
		s.notFound(w, "test", id)
		return
	}
	s.metrics.ObserveRender("test")
	respondJSON(w, http.StatusOK, s.renderer.TestCard(it))
}
