package responses

import "time"

type ConsultationWarning struct {
	Code    string `json:"code"`
	Level   string `json:"level"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
}

type SummarySection struct {
	Title   string `json:"title"`
	Code    string `json:"code"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

type SummaryContent struct {
	Sections []SummarySection `json:"sections"`
	FullText string           `json:"full_text"`
}

// SummaryMetadata is the audit trail of a single summarization. LLMModel is
// set only when an LLM produced the summary, FallbackReason only when the
// rule-based path was taken after an LLM failure.
type SummaryMetadata struct {
	RequestID         string    `json:"request_id"`
	StrategyUsed      string    `json:"strategy_used"`
	StrategyRequested string    `json:"strategy_requested"`
	RuleEngineVersion string    `json:"rule_engine_version"`
	ProcessedAt       time.Time `json:"processed_at"`
	ProcessingTimeMs  int64     `json:"processing_time_ms"`
	LLMModel          string    `json:"llm_model,omitempty"`
	FallbackReason    string    `json:"fallback_reason,omitempty"`
}

type ConsultationSummary struct {
	Summary  SummaryContent        `json:"summary"`
	Warnings []ConsultationWarning `json:"warnings"`
	Metadata SummaryMetadata       `json:"metadata"`
}

// SummarizerResult is the internal product of a summarizer before the
// usecase attaches audit metadata and merges validator warnings.
type SummarizerResult struct {
	Sections []SummarySection
	FullText string
	Warnings []ConsultationWarning
}
