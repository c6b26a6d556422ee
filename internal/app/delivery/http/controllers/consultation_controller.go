package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"healthtech-service/internal/app/contracts"
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/exceptions"
	"healthtech-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase contracts.ConsultationUsecase
	DefaultStrategy     string
}

var (
	consultationControllerInstance *ConsultationController
	onceConsultationController     sync.Once
)

func NewConsultationController(logger *zap.Logger, consultationUsecase contracts.ConsultationUsecase, defaultStrategy string) *ConsultationController {
	onceConsultationController.Do(func() {
		instance := &ConsultationController{
			Log:                 logger,
			ConsultationUsecase: consultationUsecase,
			DefaultStrategy:     defaultStrategy,
		}
		consultationControllerInstance = instance
	})
	return consultationControllerInstance
}

func (ctrl *ConsultationController) CreateConsultationSummary(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsultationController.CreateConsultationSummary requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ConsultationController.CreateConsultationSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateConsultation)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("ConsultationController.CreateConsultationSummary error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRequestBodyTooLarge(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateConsultationRequest(request)
	if request.Strategy == "" {
		request.Strategy = ctrl.DefaultStrategy
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ConsultationController.CreateConsultationSummary validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := utils.ValidateConsultationConsistency(request); err != nil {
		ctrl.Log.Error("ConsultationController.CreateConsultationSummary consistency error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.CreateSummary(ctx, request)
	if err != nil {
		ctrl.Log.Error("ConsultationController.CreateConsultationSummary error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ConsultationController.CreateConsultationSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStrategyKey, response.Metadata.StrategyUsed),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CreateConsultationSummarySuccessMessage, response)
}
