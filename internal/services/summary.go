package services

import (
	"context"
	"strings"
)

// TextSummarizer produces a summary of a text, or reports it unavailable.
type TextSummarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SummaryService fronts the hosted summarization collaborator.
type SummaryService struct {
	summarizer TextSummarizer
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(summarizer TextSummarizer) *SummaryService {
	return &SummaryService{summarizer: summarizer}
}

// Summarize returns a summary of the given text. An empty text is invalid
// input; everything the collaborator gets wrong surfaces as the facade's
// unavailable error and leaves the rest of the workflow untouched.
func (svc *SummaryService) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrInvalidInput
	}
	return svc.summarizer.Summarize(ctx, text)
}
