package utils

import (
	"testing"

	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateConsultationRequest(t *testing.T) {
	t.Run("Free Text Normalization", func(t *testing.T) {
		input := &requests.CreateConsultation{
			Patient: requests.Patient{
				FullName:  "  Maria   Silva  ",
				CPF:       " 123.456.789-00 ",
				BirthDate: " 1985-03-15 ",
			},
			ConsultationDate: " 2024-06-10 ",
			ChiefComplaint:   "  Dor   de cabeça  ",
			ProfessionalName: "  Dr.  João Souza ",
		}

		SanitizeCreateConsultationRequest(input)

		assert.Equal(t, "Maria Silva", input.Patient.FullName, "inner whitespace runs should collapse")
		assert.Equal(t, "123.456.789-00", input.Patient.CPF)
		assert.Equal(t, "1985-03-15", input.Patient.BirthDate)
		assert.Equal(t, "2024-06-10", input.ConsultationDate)
		assert.Equal(t, "Dor de cabeça", input.ChiefComplaint)
		assert.Equal(t, "Dr. João Souza", input.ProfessionalName)
	})

	t.Run("Empty Consultation Type Defaults To First Visit", func(t *testing.T) {
		input := &requests.CreateConsultation{ConsultationType: "  "}
		SanitizeCreateConsultationRequest(input)
		assert.Equal(t, constvars.ConsultationTypeFirstVisit, input.ConsultationType)
	})

	t.Run("Explicit Consultation Type Preserved", func(t *testing.T) {
		input := &requests.CreateConsultation{ConsultationType: " emergency "}
		SanitizeCreateConsultationRequest(input)
		assert.Equal(t, constvars.ConsultationTypeEmergency, input.ConsultationType)
	})

	t.Run("Empty Strategy Left For The Controller", func(t *testing.T) {
		input := &requests.CreateConsultation{Strategy: "  "}
		SanitizeCreateConsultationRequest(input)
		assert.Equal(t, "", input.Strategy, "sanitization must not pick a strategy")
	})

	t.Run("History Lists Cleaned", func(t *testing.T) {
		input := &requests.CreateConsultation{
			PastMedicalHistory: []string{" Hipertensão ", "", "  "},
			FamilyHistory:      []string{" Diabetes (mãe) "},
		}

		SanitizeCreateConsultationRequest(input)

		assert.Equal(t, []string{"Hipertensão"}, input.PastMedicalHistory)
		assert.Equal(t, []string{"Diabetes (mãe)"}, input.FamilyHistory)
	})

	t.Run("Nested Medications And Allergies Trimmed", func(t *testing.T) {
		input := &requests.CreateConsultation{
			CurrentMedications: []requests.Medication{
				{ActiveIngredient: " Losartana ", Dosage: " 50mg ", Frequency: "1x/day", Route: "oral"},
			},
			Allergies: []requests.Allergy{
				{Allergen: " Penicilina ", ReactionType: "allergic", Severity: constvars.AllergySeveritySevere},
			},
		}

		SanitizeCreateConsultationRequest(input)

		assert.Equal(t, "Losartana", input.CurrentMedications[0].ActiveIngredient)
		assert.Equal(t, "50mg", input.CurrentMedications[0].Dosage)
		assert.Equal(t, "Penicilina", input.Allergies[0].Allergen)
	})
}

func TestValidateConsultationConsistency(t *testing.T) {
	weeks := 20

	t.Run("Pregnant Male Rejected", func(t *testing.T) {
		input := &requests.CreateConsultation{
			Patient: requests.Patient{
				BiologicalSex:    constvars.BiologicalSexMale,
				IsPregnant:       true,
				GestationalWeeks: &weeks,
			},
		}
		assert.Error(t, ValidateConsultationConsistency(input))
	})

	t.Run("Pregnant Without Weeks Rejected", func(t *testing.T) {
		input := &requests.CreateConsultation{
			Patient: requests.Patient{
				BiologicalSex: constvars.BiologicalSexFemale,
				IsPregnant:    true,
			},
		}
		assert.Error(t, ValidateConsultationConsistency(input))
	})

	t.Run("Consistent Pregnancy Accepted", func(t *testing.T) {
		input := &requests.CreateConsultation{
			Patient: requests.Patient{
				BiologicalSex:    constvars.BiologicalSexFemale,
				IsPregnant:       true,
				GestationalWeeks: &weeks,
			},
		}
		assert.NoError(t, ValidateConsultationConsistency(input))
	})

	t.Run("Not Pregnant Accepted", func(t *testing.T) {
		input := &requests.CreateConsultation{
			Patient: requests.Patient{BiologicalSex: constvars.BiologicalSexFemale},
		}
		assert.NoError(t, ValidateConsultationConsistency(input))
	})
}
