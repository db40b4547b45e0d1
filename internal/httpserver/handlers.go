package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/probe-service/internal/logic/probe"
)

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("traceID", middleware.GetReqID(ctx))

	result, err := s.probe.Ping(ctx)
	if err != nil {
		if errors.Is(err, probe.ErrSimulatedFailure) {
			s.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
				Status:  "error",
				Message: "simulated failure",
			})

			return
		}

		logger.ErrorContext(ctx, "ping failed", "reason", err)
		s.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "internal error",
		})

		return
	}

	s.writeJSON(ctx, w, http.StatusOK, result)
}

// handleHealth always reports UP: liveness of the process itself, not
// readiness of its components.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, healthResponse{Status: "UP"})
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.ErrorContext(ctx, "failed to encode response",
			"error", err,
		)
	}
}
