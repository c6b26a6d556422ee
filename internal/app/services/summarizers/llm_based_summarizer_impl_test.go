package summarizers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeGenAIClient struct {
	response string
	err      error
	calls    int
	blockFor time.Duration
}

func (c *fakeGenAIClient) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	c.calls++
	if c.blockFor > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.blockFor):
		}
	}
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *fakeGenAIClient) ModelName() string {
	return "gemini-1.5-flash"
}

func TestLLMBasedSummarizerAvailability(t *testing.T) {
	t.Run("Disabled Summarizer Fails Without Calling The Client", func(t *testing.T) {
		client := &fakeGenAIClient{}
		summarizer := &llmBasedSummarizer{Client: client, Enabled: false, Timeout: time.Second, Log: zap.NewNop()}

		result, model, err := summarizer.Summarize(context.Background(), minimalConsultation())

		assert.Nil(t, result)
		assert.Empty(t, model)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "error should be a CustomError")
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
		assert.Equal(t, 0, client.calls, "disabled path must never reach the provider")
	})

	t.Run("Blocking Client Times Out", func(t *testing.T) {
		client := &fakeGenAIClient{blockFor: time.Second}
		summarizer := &llmBasedSummarizer{Client: client, Enabled: true, Timeout: 20 * time.Millisecond, Log: zap.NewNop()}

		result, _, err := summarizer.Summarize(context.Background(), minimalConsultation())

		assert.Nil(t, result)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusGatewayTimeout, customErr.StatusCode)
	})
}

func TestLLMBasedSummarizerParsing(t *testing.T) {
	newEnabled := func(response string) (*llmBasedSummarizer, *fakeGenAIClient) {
		client := &fakeGenAIClient{response: response}
		return &llmBasedSummarizer{Client: client, Enabled: true, Timeout: time.Second, Log: zap.NewNop()}, client
	}

	t.Run("Fenced JSON Response Parses", func(t *testing.T) {
		summarizer, _ := newEnabled("```json\n" + `{"sections":[{"title":"Identificação","code":"identification","content":"Paciente: Maria Silva","order":1}]}` + "\n```")

		result, model, err := summarizer.Summarize(context.Background(), minimalConsultation())

		assert.NoError(t, err)
		assert.Equal(t, "gemini-1.5-flash", model)
		assert.Len(t, result.Sections, 1)
		assert.Equal(t, "identification", result.Sections[0].Code)
		assert.Equal(t, "Paciente: Maria Silva", result.Sections[0].Content)
		assert.Contains(t, result.FullText, "=== IDENTIFICAÇÃO ===")
		assert.Empty(t, result.Warnings)
	})

	t.Run("Incomplete Section Skipped With Warning", func(t *testing.T) {
		summarizer, _ := newEnabled(`{"sections":[{"title":"Identificação","code":"identification","content":"Paciente: Maria Silva","order":1},{"title":"","code":"plan","content":"Retorno em 30 dias"}]}`)

		result, _, err := summarizer.Summarize(context.Background(), minimalConsultation())

		assert.NoError(t, err)
		assert.Len(t, result.Sections, 1)
		assert.Len(t, result.Warnings, 1)
		assert.Equal(t, constvars.WarningCodeLLMSectionIncomplete, result.Warnings[0].Code)
		assert.Equal(t, constvars.WarningLevelLow, result.Warnings[0].Level)
	})

	t.Run("Missing Order Defaults To Position", func(t *testing.T) {
		summarizer, _ := newEnabled(`{"sections":[{"title":"Identificação","code":"identification","content":"Paciente: Maria Silva"},{"title":"Plano","code":"plan","content":"Retorno em 30 dias"}]}`)

		result, _, err := summarizer.Summarize(context.Background(), minimalConsultation())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Sections[0].Order)
		assert.Equal(t, 2, result.Sections[1].Order)
	})

	t.Run("Non JSON Response Is Rejected", func(t *testing.T) {
		summarizer, _ := newEnabled("Desculpe, não consegui gerar o resumo.")

		result, _, err := summarizer.Summarize(context.Background(), minimalConsultation())

		assert.Nil(t, result)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Empty Sections Is Rejected", func(t *testing.T) {
		summarizer, _ := newEnabled(`{"sections":[]}`)

		_, _, err := summarizer.Summarize(context.Background(), minimalConsultation())
		assert.Error(t, err)
	})

	t.Run("Code Normalized To Lowered Snake Case", func(t *testing.T) {
		summarizer, _ := newEnabled(`{"sections":[{"title":"Sinais Vitais","code":"Vital Signs","content":"FC: 72 bpm","order":3}]}`)

		result, _, err := summarizer.Summarize(context.Background(), minimalConsultation())

		assert.NoError(t, err)
		assert.Equal(t, "vital_signs", result.Sections[0].Code)
	})
}

func TestLLMBasedSummarizerGuardrails(t *testing.T) {
	t.Run("Diagnostic Terms Scrubbed With Warnings", func(t *testing.T) {
		client := &fakeGenAIClient{response: `{"sections":[{"title":"Avaliação","code":"assessment","content":"Quadro sugere infecção viral, provável resfriado.","order":6}]}`}
		summarizer := &llmBasedSummarizer{Client: client, Enabled: true, Timeout: time.Second, Log: zap.NewNop()}

		result, _, err := summarizer.Summarize(context.Background(), minimalConsultation())

		assert.NoError(t, err)
		content := result.Sections[0].Content
		assert.Contains(t, content, "[REMOVIDO]")
		assert.NotContains(t, content, "sugere")
		assert.NotContains(t, content, "provável")

		var termsWarning, passWarning bool
		for _, warning := range result.Warnings {
			switch warning.Code {
			case constvars.WarningCodeLLMDiagnosticTerms:
				termsWarning = true
				assert.Equal(t, constvars.WarningLevelHigh, warning.Level)
				assert.Equal(t, "sections.assessment", warning.Field)
			case constvars.WarningCodeLLMGuardrailsTriggered:
				passWarning = true
				assert.Equal(t, constvars.WarningLevelMedium, warning.Level)
			}
		}
		assert.True(t, termsWarning, "per-section diagnostic warning expected")
		assert.True(t, passWarning, "summary guardrail warning expected")
	})

	t.Run("Clean Content Passes Untouched", func(t *testing.T) {
		client := &fakeGenAIClient{response: `{"sections":[{"title":"Avaliação","code":"assessment","content":"Consulta de primeira consulta realizada em 10/06/2024.","order":6}]}`}
		summarizer := &llmBasedSummarizer{Client: client, Enabled: true, Timeout: time.Second, Log: zap.NewNop()}

		result, _, err := summarizer.Summarize(context.Background(), minimalConsultation())

		assert.NoError(t, err)
		assert.NotContains(t, result.Sections[0].Content, "[REMOVIDO]")
		assert.Empty(t, result.Warnings)
	})
}
