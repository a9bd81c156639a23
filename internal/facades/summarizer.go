package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/skosovan/data-analyzer/internal/logger"
)

// ErrSummaryUnavailable is returned whenever the hosted summarizer cannot
// produce a summary: transport failure, non-OK status, or a response whose
// shape does not match the contract. Callers treat it as a soft failure.
var ErrSummaryUnavailable = errors.New("summary unavailable")

// SummarizerFacade calls a hosted text-summarization endpoint over HTTP.
// Request body is {"inputs": <text>}, response is [{"summary_text": <string>}].
type SummarizerFacade struct {
	client *http.Client
	url    string
	token  string
}

// NewSummarizerFacade creates a facade with a bounded request timeout.
// An empty URL or token leaves the facade disabled: every call reports
// the summary as unavailable instead of sending an unauthenticated request.
func NewSummarizerFacade(url, token string, timeout time.Duration) *SummarizerFacade {
	return &SummarizerFacade{
		client: &http.Client{Timeout: timeout},
		url:    url,
		token:  token,
	}
}

type summarizeRequest struct {
	Inputs string `json:"inputs"`
}

type summarizeResponse struct {
	SummaryText string `json:"summary_text"`
}

// Summarize sends the text to the endpoint and returns the summary string.
func (f *SummarizerFacade) Summarize(ctx context.Context, text string) (string, error) {
	if f.url == "" || f.token == "" {
		logger.Log.Warnw("summarizer not configured, skipping")
		return "", ErrSummaryUnavailable
	}

	body, err := json.Marshal(summarizeRequest{Inputs: text})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Warnw("summarizer request failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warnw("summarizer returned non-OK status", "status", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrSummaryUnavailable, resp.StatusCode)
	}

	var parsed []summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Log.Warnw("summarizer response malformed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}
	if len(parsed) == 0 || parsed[0].SummaryText == "" {
		logger.Log.Warnw("summarizer response empty")
		return "", ErrSummaryUnavailable
	}

	return parsed[0].SummaryText, nil
}
