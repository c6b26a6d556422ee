package contracts

import (
	"context"
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/dto/responses"
)

// Summarizer is the deterministic template path. It cannot fail on a
// schema-valid consultation.
type Summarizer interface {
	Summarize(request *requests.CreateConsultation) *responses.SummarizerResult
}

// LLMSummarizer is the generative path. It returns the model identifier used
// on success and knows nothing about fallback, the usecase owns that.
type LLMSummarizer interface {
	Summarize(ctx context.Context, request *requests.CreateConsultation) (*responses.SummarizerResult, string, error)
}
