package contracts

import (
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/dto/responses"
)

// ClinicalValidator evaluates plausibility and completeness rules over a
// schema-valid consultation. Warnings never block summarization.
type ClinicalValidator interface {
	Validate(request *requests.CreateConsultation) []responses.ConsultationWarning
}
