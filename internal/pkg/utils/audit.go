package utils

import (
	"time"

	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/responses"

	"github.com/google/uuid"
)

// GenerateAuditID returns the UUID v4 recorded in summary metadata. It is
// distinct from the transport request id carried by X-Request-Id.
func GenerateAuditID() string {
	return uuid.New().String()
}

// CreateSummaryMetadata assembles the audit metadata for one summarization.
// ProcessingTimeMs is whole milliseconds, fractions are dropped. llmModel
// must be empty unless an LLM produced the summary, fallbackReason must be
// empty unless the rule-based path ran after an LLM failure.
func CreateSummaryMetadata(requestID, strategyRequested, strategyUsed string, start time.Time, llmModel, fallbackReason string) responses.SummaryMetadata {
	return responses.SummaryMetadata{
		RequestID:         requestID,
		StrategyUsed:      strategyUsed,
		StrategyRequested: strategyRequested,
		RuleEngineVersion: constvars.RuleEngineVersion,
		ProcessedAt:       time.Now().UTC(),
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
		LLMModel:          llmModel,
		FallbackReason:    fallbackReason,
	}
}
