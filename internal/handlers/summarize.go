package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skosovan/data-analyzer/internal/facades"
	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/middlewares"
	"github.com/skosovan/data-analyzer/internal/services"
)

// Summarizer defines the interface that the summary service must implement.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SummarizeRequest carries the text to summarize
// swagger:model SummarizeRequest
type SummarizeRequest struct {
	// Text to summarize
	// required: true
	Text string `json:"text"`
}

// SummarizeResponse carries the produced summary
// swagger:model SummarizeResponse
type SummarizeResponse struct {
	// Summary text
	Summary string `json:"summary"`
}

// NewSummarizeHandler returns an HTTP handler for text summarization.
// @Summary Summarize text
// @Description Sends the text to the hosted summarization endpoint. When the endpoint is unreachable or malformed, the summary is reported unavailable; nothing else in the workflow depends on it.
// @Tags summary
// @Accept json
// @Produce json
// @Param summarizeRequest body handlers.SummarizeRequest true "Text to summarize"
// @Success 200 {object} handlers.SummarizeResponse "Summary produced"
// @Failure 400 {object} handlers.ErrorResponse "Empty text"
// @Failure 503 {object} handlers.ErrorResponse "Summary unavailable"
// @Router /summarize [post]
// @Security BearerAuth
func NewSummarizeHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SummarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		summary, err := svc.Summarize(r.Context(), req.Text)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Text must not be empty"})
			case errors.Is(err, facades.ErrSummaryUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Summary unavailable"})
			default:
				logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SummarizeResponse{Summary: summary})
	}
}
