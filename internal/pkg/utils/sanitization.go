package utils

import (
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/exceptions"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitized := make([]string, 0, len(input))
	for _, v := range input {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			sanitized = append(sanitized, trimmed)
		}
	}
	return sanitized
}

// SanitizeCreateConsultationRequest trims free-text fields, drops empty
// history entries and defaults an empty consultation_type to first_visit.
// The strategy default is configuration-owned, the controller applies it.
func SanitizeCreateConsultationRequest(input *requests.CreateConsultation) {
	input.Patient.FullName = NormalizeWhitespace(input.Patient.FullName)
	input.Patient.CPF = strings.TrimSpace(input.Patient.CPF)
	input.Patient.BirthDate = strings.TrimSpace(input.Patient.BirthDate)
	input.Patient.BloodType = strings.TrimSpace(input.Patient.BloodType)

	input.ConsultationDate = strings.TrimSpace(input.ConsultationDate)
	input.ConsultationType = strings.TrimSpace(input.ConsultationType)
	if input.ConsultationType == "" {
		input.ConsultationType = constvars.ConsultationTypeFirstVisit
	}
	input.Strategy = strings.TrimSpace(input.Strategy)

	input.FacilityName = strings.TrimSpace(input.FacilityName)
	input.ChiefComplaint = NormalizeWhitespace(input.ChiefComplaint)
	input.HistoryPresentIllness = NormalizeWhitespace(input.HistoryPresentIllness)
	input.PhysicalExamination = NormalizeWhitespace(input.PhysicalExamination)
	input.SocialHistory = NormalizeWhitespace(input.SocialHistory)
	input.TreatmentPlan = NormalizeWhitespace(input.TreatmentPlan)
	input.AdditionalNotes = NormalizeWhitespace(input.AdditionalNotes)
	input.ProfessionalName = NormalizeWhitespace(input.ProfessionalName)
	input.ProfessionalCouncilID = strings.TrimSpace(input.ProfessionalCouncilID)
	input.Specialty = strings.TrimSpace(input.Specialty)

	input.PastMedicalHistory = cleanWhiteSpaceFromEachStringOfAnArray(input.PastMedicalHistory)
	input.FamilyHistory = cleanWhiteSpaceFromEachStringOfAnArray(input.FamilyHistory)

	for i := range input.CurrentMedications {
		medication := &input.CurrentMedications[i]
		medication.ActiveIngredient = strings.TrimSpace(medication.ActiveIngredient)
		medication.CommercialName = strings.TrimSpace(medication.CommercialName)
		medication.Dosage = strings.TrimSpace(medication.Dosage)
		medication.Prescriber = strings.TrimSpace(medication.Prescriber)
		medication.Notes = strings.TrimSpace(medication.Notes)
	}

	for i := range input.Allergies {
		allergy := &input.Allergies[i]
		allergy.Allergen = strings.TrimSpace(allergy.Allergen)
		allergy.ReactionDescription = strings.TrimSpace(allergy.ReactionDescription)
	}
}

// ValidateConsultationConsistency covers the cross-field rules struct tags
// cannot express.
func ValidateConsultationConsistency(input *requests.CreateConsultation) error {
	if input.Patient.IsPregnant && input.Patient.BiologicalSex == constvars.BiologicalSexMale {
		return exceptions.ErrPregnancyInconsistent()
	}
	if input.Patient.IsPregnant && input.Patient.GestationalWeeks == nil {
		return exceptions.ErrGestationalWeeksRequired()
	}
	return nil
}
