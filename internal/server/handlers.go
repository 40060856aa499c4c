package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"photo-critic/apimodels"
	"photo-critic/internal/evaluator"
)

// maxBodyBytes caps the request body at the HTTP layer; the evaluator
// additionally caps the encoded image string itself.
const maxBodyBytes = 4 << 20

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode analysis request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	result, err := s.evaluator.Evaluate(r.Context(), req.ImageBase64)
	if err != nil {
		slog.Error("analysis request failed", "error", err)
		writeError(w, evaluator.StatusCode(err), evaluator.ClientMessage(err))
		return
	}

	// Relay the model's JSON verbatim
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(result); err != nil {
		slog.Error("failed to write analysis response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("health check response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apimodels.ErrorResponse{Error: message}); err != nil {
		slog.Error("failed to write error response", "error", err)
	}
}
