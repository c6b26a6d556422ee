package controllers

import (
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/responses"
	"healthtech-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type HealthController struct {
	Log             *zap.Logger
	Version         string
	DefaultStrategy string
	LLMEnabled      bool
}

var (
	healthControllerInstance *HealthController
	onceHealthController     sync.Once
)

func NewHealthController(logger *zap.Logger, version, defaultStrategy string, llmEnabled bool) *HealthController {
	onceHealthController.Do(func() {
		instance := &HealthController{
			Log:             logger,
			Version:         version,
			DefaultStrategy: defaultStrategy,
			LLMEnabled:      llmEnabled,
		}
		healthControllerInstance = instance
	})
	return healthControllerInstance
}

func (ctrl *HealthController) CheckHealth(w http.ResponseWriter, r *http.Request) {
	response := responses.HealthCheck{
		Status:            "healthy",
		Service:           "healthtech-service",
		Version:           ctrl.Version,
		RuleEngineVersion: constvars.RuleEngineVersion,
		DefaultStrategy:   ctrl.DefaultStrategy,
		LLMEnabled:        ctrl.LLMEnabled,
		Timestamp:         time.Now().UTC(),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, response)
}
