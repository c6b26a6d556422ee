package utils

import (
	"testing"

	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func validCreateConsultation() *requests.CreateConsultation {
	return &requests.CreateConsultation{
		Patient: requests.Patient{
			FullName:      "Maria Silva",
			CPF:           "123.456.789-00",
			BirthDate:     "1985-03-15",
			BiologicalSex: constvars.BiologicalSexFemale,
		},
		ConsultationDate: "2024-06-10",
		ConsultationType: constvars.ConsultationTypeFirstVisit,
		ChiefComplaint:   "Dor de cabeça há 3 dias",
		ProfessionalName: "Dr. João Souza",
		Strategy:         constvars.StrategyRuleBased,
	}
}

func TestValidateStructCreateConsultation(t *testing.T) {
	t.Run("Valid Minimal Request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validCreateConsultation()))
	})

	t.Run("CPF Format Enforced", func(t *testing.T) {
		input := validCreateConsultation()
		input.Patient.CPF = "12345678900"
		assert.Error(t, ValidateStruct(input), "unformatted CPF should fail")

		input.Patient.CPF = "123.456.789-0"
		assert.Error(t, ValidateStruct(input), "short check digits should fail")
	})

	t.Run("Council ID Format", func(t *testing.T) {
		input := validCreateConsultation()

		for _, valid := range []string{"CRM-SP 123456", "CRM-SP123456", "COREN-RJ 9876", "CREFITO-MG 12345678"} {
			input.ProfessionalCouncilID = valid
			assert.NoError(t, ValidateStruct(input), "council id %q should be accepted", valid)
		}

		for _, invalid := range []string{"CRX-SP 123456", "CRM-S 123456", "CRM-SP 123", "crm-sp 123456"} {
			input.ProfessionalCouncilID = invalid
			assert.Error(t, ValidateStruct(input), "council id %q should be rejected", invalid)
		}
	})

	t.Run("Chief Complaint Length Bounds", func(t *testing.T) {
		input := validCreateConsultation()
		input.ChiefComplaint = "Dor"
		assert.Error(t, ValidateStruct(input))
	})

	t.Run("Consultation Date Format", func(t *testing.T) {
		input := validCreateConsultation()
		input.ConsultationDate = "10/06/2024"
		assert.Error(t, ValidateStruct(input))
	})

	t.Run("Strategy Enum", func(t *testing.T) {
		input := validCreateConsultation()
		input.Strategy = "hybrid"
		assert.Error(t, ValidateStruct(input))
	})

	t.Run("Nested Medication Enums", func(t *testing.T) {
		input := validCreateConsultation()
		input.CurrentMedications = []requests.Medication{
			{ActiveIngredient: "Losartana", Dosage: "50mg", Frequency: "sempre", Route: "oral"},
		}
		assert.Error(t, ValidateStruct(input), "unknown frequency should fail the dive validation")

		input.CurrentMedications[0].Frequency = "1x/day"
		assert.NoError(t, ValidateStruct(input))
	})

	t.Run("Vital Sign Plausibility Bounds", func(t *testing.T) {
		input := validCreateConsultation()
		saturation := 120
		input.VitalSigns = &requests.VitalSigns{OxygenSaturation: &saturation}
		assert.Error(t, ValidateStruct(input), "saturation above 100 is not a plausible reading")
	})
}
