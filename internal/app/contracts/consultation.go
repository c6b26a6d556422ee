package contracts

import (
	"context"
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	CreateSummary(ctx context.Context, request *requests.CreateConsultation) (*responses.ConsultationSummary, error)
}
