package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubConsultationUsecase struct {
	summary     *responses.ConsultationSummary
	err         error
	lastRequest *requests.CreateConsultation
	calls       int
}

func (uc *stubConsultationUsecase) CreateSummary(ctx context.Context, request *requests.CreateConsultation) (*responses.ConsultationSummary, error) {
	uc.calls++
	uc.lastRequest = request
	if uc.err != nil {
		return nil, uc.err
	}
	return uc.summary, nil
}

func validSummary() *responses.ConsultationSummary {
	return &responses.ConsultationSummary{
		Summary: responses.SummaryContent{
			Sections: []responses.SummarySection{
				{Title: "Identificação", Code: constvars.SectionIdentification, Content: "Paciente: Maria Silva", Order: 1},
			},
			FullText: "=== IDENTIFICAÇÃO ===\nPaciente: Maria Silva",
		},
		Warnings: []responses.ConsultationWarning{},
		Metadata: responses.SummaryMetadata{
			StrategyUsed:      constvars.StrategyRuleBased,
			StrategyRequested: constvars.StrategyRuleBased,
			RuleEngineVersion: constvars.RuleEngineVersion,
		},
	}
}

func validRequestBody() string {
	return `{
		"patient": {
			"full_name": "Maria Silva",
			"cpf": "123.456.789-00",
			"birth_date": "1985-03-15",
			"biological_sex": "female"
		},
		"consultation_date": "2024-06-10",
		"chief_complaint": "Dor de cabeça há 3 dias",
		"professional_name": "Dr. João Souza"
	}`
}

func newControllerRequest(body string) *http.Request {
	request := httptest.NewRequest(http.MethodPost, "/api/v1/consultations", strings.NewReader(body))
	ctx := context.WithValue(request.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "HLTH_SVC_test")
	return request.WithContext(ctx)
}

func TestCreateConsultationSummary(t *testing.T) {
	t.Run("Valid Request Succeeds", func(t *testing.T) {
		usecase := &stubConsultationUsecase{summary: validSummary()}
		controller := &ConsultationController{
			Log:                 zap.NewNop(),
			ConsultationUsecase: usecase,
			DefaultStrategy:     constvars.StrategyRuleBased,
		}

		recorder := httptest.NewRecorder()
		controller.CreateConsultationSummary(recorder, newControllerRequest(validRequestBody()))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 1, usecase.calls)

		var payload struct {
			Success bool                           `json:"success"`
			Message string                         `json:"message"`
			Data    *responses.ConsultationSummary `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.True(t, payload.Success)
		assert.NotNil(t, payload.Data)
		assert.Equal(t, constvars.StrategyRuleBased, payload.Data.Metadata.StrategyUsed)
	})

	t.Run("Empty Strategy Gets The Configured Default", func(t *testing.T) {
		usecase := &stubConsultationUsecase{summary: validSummary()}
		controller := &ConsultationController{
			Log:                 zap.NewNop(),
			ConsultationUsecase: usecase,
			DefaultStrategy:     constvars.StrategyLLMBased,
		}

		recorder := httptest.NewRecorder()
		controller.CreateConsultationSummary(recorder, newControllerRequest(validRequestBody()))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, constvars.StrategyLLMBased, usecase.lastRequest.Strategy)
	})

	t.Run("Explicit Strategy Wins Over The Default", func(t *testing.T) {
		usecase := &stubConsultationUsecase{summary: validSummary()}
		controller := &ConsultationController{
			Log:                 zap.NewNop(),
			ConsultationUsecase: usecase,
			DefaultStrategy:     constvars.StrategyLLMBased,
		}

		body := strings.Replace(validRequestBody(), `"consultation_date"`, `"strategy": "rule_based",
		"consultation_date"`, 1)

		recorder := httptest.NewRecorder()
		controller.CreateConsultationSummary(recorder, newControllerRequest(body))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, constvars.StrategyRuleBased, usecase.lastRequest.Strategy)
	})

	t.Run("Missing Request ID In Context", func(t *testing.T) {
		usecase := &stubConsultationUsecase{summary: validSummary()}
		controller := &ConsultationController{
			Log:                 zap.NewNop(),
			ConsultationUsecase: usecase,
			DefaultStrategy:     constvars.StrategyRuleBased,
		}

		request := httptest.NewRequest(http.MethodPost, "/api/v1/consultations", strings.NewReader(validRequestBody()))
		recorder := httptest.NewRecorder()
		controller.CreateConsultationSummary(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, 0, usecase.calls)
	})

	t.Run("Malformed JSON Rejected", func(t *testing.T) {
		usecase := &stubConsultationUsecase{summary: validSummary()}
		controller := &ConsultationController{
			Log:                 zap.NewNop(),
			ConsultationUsecase: usecase,
			DefaultStrategy:     constvars.StrategyRuleBased,
		}

		recorder := httptest.NewRecorder()
		controller.CreateConsultationSummary(recorder, newControllerRequest(`{"patient":`))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, usecase.calls)
	})

	t.Run("Schema Validation Failure Rejected", func(t *testing.T) {
		usecase := &stubConsultationUsecase{summary: validSummary()}
		controller := &ConsultationController{
			Log:                 zap.NewNop(),
			ConsultationUsecase: usecase,
			DefaultStrategy:     constvars.StrategyRuleBased,
		}

		body := strings.Replace(validRequestBody(), "123.456.789-00", "12345678900", 1)

		recorder := httptest.NewRecorder()
		controller.CreateConsultationSummary(recorder, newControllerRequest(body))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, usecase.calls)
	})

	t.Run("Pregnant Male Rejected As Unprocessable", func(t *testing.T) {
		usecase := &stubConsultationUsecase{summary: validSummary()}
		controller := &ConsultationController{
			Log:                 zap.NewNop(),
			ConsultationUsecase: usecase,
			DefaultStrategy:     constvars.StrategyRuleBased,
		}

		body := strings.Replace(validRequestBody(), `"biological_sex": "female"`, `"biological_sex": "male",
			"is_pregnant": true,
			"gestational_weeks": 20`, 1)

		recorder := httptest.NewRecorder()
		controller.CreateConsultationSummary(recorder, newControllerRequest(body))

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Equal(t, 0, usecase.calls)
	})
}
