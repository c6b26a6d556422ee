package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCheckHealth(t *testing.T) {
	controller := &HealthController{
		Log:             zap.NewNop(),
		Version:         "v1",
		DefaultStrategy: constvars.StrategyRuleBased,
		LLMEnabled:      false,
	}

	request := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()

	controller.CheckHealth(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Success bool                   `json:"success"`
		Data    *responses.HealthCheck `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "healthy", payload.Data.Status)
	assert.Equal(t, "healthtech-service", payload.Data.Service)
	assert.Equal(t, "v1", payload.Data.Version)
	assert.Equal(t, constvars.RuleEngineVersion, payload.Data.RuleEngineVersion)
	assert.Equal(t, constvars.StrategyRuleBased, payload.Data.DefaultStrategy)
	assert.False(t, payload.Data.LLMEnabled)
	assert.False(t, payload.Data.Timestamp.IsZero())
}
