package consultations

import (
	"context"
	"errors"
	"sync"
	"time"

	"healthtech-service/internal/app/contracts"
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/dto/responses"
	"healthtech-service/internal/pkg/exceptions"
	"healthtech-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type consultationUsecase struct {
	ClinicalValidator   contracts.ClinicalValidator
	RuleBasedSummarizer contracts.Summarizer
	LLMSummarizer       contracts.LLMSummarizer
	Log                 *zap.Logger
}

var (
	consultationUsecaseInstance contracts.ConsultationUsecase
	onceConsultationUsecase     sync.Once
)

func NewConsultationUsecase(
	clinicalValidator contracts.ClinicalValidator,
	ruleBasedSummarizer contracts.Summarizer,
	llmSummarizer contracts.LLMSummarizer,
	logger *zap.Logger,
) contracts.ConsultationUsecase {
	onceConsultationUsecase.Do(func() {
		consultationUsecaseInstance = &consultationUsecase{
			ClinicalValidator:   clinicalValidator,
			RuleBasedSummarizer: ruleBasedSummarizer,
			LLMSummarizer:       llmSummarizer,
			Log:                 logger,
		}
	})
	return consultationUsecaseInstance
}

// CreateSummary runs validation, selects the strategy and attaches audit
// metadata. The request must already be sanitized and schema-valid. Fallback
// to the rule-based path happens here and only here: any LLM failure,
// whatever the cause, yields a complete rule-based summary with
// strategy llm_fallback and the failure recorded as fallback_reason.
func (uc *consultationUsecase) CreateSummary(ctx context.Context, request *requests.CreateConsultation) (*responses.ConsultationSummary, error) {
	start := time.Now()
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("consultationUsecase.CreateSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStrategyKey, request.Strategy),
		zap.String("patient_cpf", utils.MaskCPF(request.Patient.CPF)),
	)

	clinicalWarnings := uc.ClinicalValidator.Validate(request)

	var (
		result         *responses.SummarizerResult
		strategyUsed   string
		llmModel       string
		fallbackReason string
	)

	if request.Strategy == constvars.StrategyLLMBased {
		llmResult, model, err := uc.LLMSummarizer.Summarize(ctx, request)
		if err != nil {
			fallbackReason = fallbackReasonFromError(err)
			uc.Log.Warn("consultationUsecase.CreateSummary LLM failed, falling back to rule-based",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("fallback_reason", fallbackReason),
			)
			result = uc.RuleBasedSummarizer.Summarize(request)
			strategyUsed = constvars.StrategyLLMFallback
		} else {
			result = llmResult
			strategyUsed = constvars.StrategyLLMBased
			llmModel = model
		}
	} else {
		result = uc.RuleBasedSummarizer.Summarize(request)
		strategyUsed = constvars.StrategyRuleBased
	}

	warnings := make([]responses.ConsultationWarning, 0, len(clinicalWarnings)+len(result.Warnings))
	warnings = append(warnings, clinicalWarnings...)
	warnings = append(warnings, result.Warnings...)

	summary := &responses.ConsultationSummary{
		Summary: responses.SummaryContent{
			Sections: result.Sections,
			FullText: result.FullText,
		},
		Warnings: warnings,
		Metadata: utils.CreateSummaryMetadata(
			utils.GenerateAuditID(),
			request.Strategy,
			strategyUsed,
			start,
			llmModel,
			fallbackReason,
		),
	}

	uc.Log.Info("consultationUsecase.CreateSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStrategyKey, strategyUsed),
		zap.Int("warning_count", len(warnings)),
		zap.Int("section_count", len(result.Sections)),
	)
	return summary, nil
}

// fallbackReasonFromError prefers the developer message so the audit trail
// carries the real cause instead of the generic client text.
func fallbackReasonFromError(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.DevMessage
	}
	return err.Error()
}
