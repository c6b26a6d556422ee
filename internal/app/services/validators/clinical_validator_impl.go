package validators

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"healthtech-service/internal/app/contracts"
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/dto/responses"
	"healthtech-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type clinicalValidator struct {
	Log *zap.Logger
}

var (
	clinicalValidatorInstance contracts.ClinicalValidator
	onceClinicalValidator     sync.Once
)

func NewClinicalValidator(logger *zap.Logger) contracts.ClinicalValidator {
	onceClinicalValidator.Do(func() {
		clinicalValidatorInstance = &clinicalValidator{
			Log: logger,
		}
	})
	return clinicalValidatorInstance
}

// Validate runs every rule in declaration order. Rules never suppress each
// other, a single record accumulates as many warnings as apply.
func (v *clinicalValidator) Validate(request *requests.CreateConsultation) []responses.ConsultationWarning {
	warnings := []responses.ConsultationWarning{}

	warnings = append(warnings, v.checkMissingData(request)...)
	warnings = append(warnings, v.checkVitalSignRanges(request.VitalSigns)...)
	warnings = append(warnings, v.checkBloodPressureConsistency(request.VitalSigns)...)
	warnings = append(warnings, v.checkSevereAllergies(request.Allergies)...)
	warnings = append(warnings, v.checkPregnancy(request)...)
	warnings = append(warnings, v.checkAgeSpecific(request)...)
	warnings = append(warnings, v.checkMedications(request)...)
	warnings = append(warnings, v.checkUnconfirmedAllergies(request.Allergies)...)
	warnings = append(warnings, v.checkEmergencyVitals(request)...)

	return warnings
}

func (v *clinicalValidator) checkMissingData(request *requests.CreateConsultation) []responses.ConsultationWarning {
	var warnings []responses.ConsultationWarning

	if request.VitalSigns == nil {
		warnings = append(warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodeMissingVitalSigns,
			Level:   constvars.WarningLevelInfo,
			Message: "Sinais vitais não informados na consulta",
		})
	}

	if len(request.FamilyHistory) == 0 {
		warnings = append(warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodeMissingFamilyHistory,
			Level:   constvars.WarningLevelInfo,
			Message: "Histórico familiar não informado",
			Field:   "family_history",
			Value:   "[]",
		})
	}

	if len(request.PastMedicalHistory) == 0 {
		warnings = append(warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodeMissingPastHistory,
			Level:   constvars.WarningLevelInfo,
			Message: "Antecedentes patológicos não informados",
			Field:   "past_medical_history",
			Value:   "[]",
		})
	}

	return warnings
}

func (v *clinicalValidator) checkVitalSignRanges(vitalSigns *requests.VitalSigns) []responses.ConsultationWarning {
	if vitalSigns == nil {
		return nil
	}

	var warnings []responses.ConsultationWarning
	for _, fieldName := range constvars.VitalSignOrder {
		value, present := vitalSignValue(vitalSigns, fieldName)
		if !present {
			continue
		}
		if warning := checkVitalRange(fieldName, value); warning != nil {
			warnings = append(warnings, *warning)
		}
	}
	return warnings
}

func vitalSignValue(vitalSigns *requests.VitalSigns, fieldName string) (float64, bool) {
	switch fieldName {
	case constvars.VitalFieldSystolicBP:
		if vitalSigns.SystolicBP != nil {
			return float64(*vitalSigns.SystolicBP), true
		}
	case constvars.VitalFieldDiastolicBP:
		if vitalSigns.DiastolicBP != nil {
			return float64(*vitalSigns.DiastolicBP), true
		}
	case constvars.VitalFieldHeartRate:
		if vitalSigns.HeartRate != nil {
			return float64(*vitalSigns.HeartRate), true
		}
	case constvars.VitalFieldRespiratoryRate:
		if vitalSigns.RespiratoryRate != nil {
			return float64(*vitalSigns.RespiratoryRate), true
		}
	case constvars.VitalFieldTemperatureCelsius:
		if vitalSigns.TemperatureCelsius != nil {
			return *vitalSigns.TemperatureCelsius, true
		}
	case constvars.VitalFieldOxygenSaturation:
		if vitalSigns.OxygenSaturation != nil {
			return float64(*vitalSigns.OxygenSaturation), true
		}
	}
	return 0, false
}

// checkVitalRange assigns the severity per band, critical bounds win over
// normal bounds.
func checkVitalRange(fieldName string, value float64) *responses.ConsultationWarning {
	rangeDef := constvars.VitalSignRanges[fieldName]
	rendered := formatVitalValue(fieldName, value)

	measurement := utils.FormatVitalSign(rendered, rangeDef.Unit, "")

	switch {
	case value < rangeDef.MinCritical:
		return &responses.ConsultationWarning{
			Code:    fmt.Sprintf("%s_CRITICAL_LOW", upperSnake(fieldName)),
			Level:   constvars.WarningLevelHigh,
			Message: fmt.Sprintf("%s criticamente baixa: %s", rangeDef.Label, measurement),
			Field:   "vital_signs." + fieldName,
			Value:   rendered,
		}
	case value < rangeDef.MinNormal:
		return &responses.ConsultationWarning{
			Code:    fmt.Sprintf("%s_LOW", upperSnake(fieldName)),
			Level:   constvars.WarningLevelMedium,
			Message: fmt.Sprintf("%s abaixo do esperado: %s", rangeDef.Label, measurement),
			Field:   "vital_signs." + fieldName,
			Value:   rendered,
		}
	case value > rangeDef.MaxCritical:
		return &responses.ConsultationWarning{
			Code:    fmt.Sprintf("%s_CRITICAL_HIGH", upperSnake(fieldName)),
			Level:   constvars.WarningLevelHigh,
			Message: fmt.Sprintf("%s criticamente elevada: %s", rangeDef.Label, measurement),
			Field:   "vital_signs." + fieldName,
			Value:   rendered,
		}
	case value > rangeDef.MaxNormal:
		return &responses.ConsultationWarning{
			Code:    fmt.Sprintf("%s_HIGH", upperSnake(fieldName)),
			Level:   constvars.WarningLevelLow,
			Message: fmt.Sprintf("%s acima do esperado: %s", rangeDef.Label, measurement),
			Field:   "vital_signs." + fieldName,
			Value:   rendered,
		}
	}
	return nil
}

func formatVitalValue(fieldName string, value float64) string {
	if fieldName == constvars.VitalFieldTemperatureCelsius {
		return strconv.FormatFloat(value, 'f', 1, 64)
	}
	return strconv.FormatInt(int64(value), 10)
}

func upperSnake(fieldName string) string {
	runes := []rune(fieldName)
	for i, r := range runes {
		if r >= 'a' && r <= 'z' {
			runes[i] = r - 32
		}
	}
	return string(runes)
}

func (v *clinicalValidator) checkBloodPressureConsistency(vitalSigns *requests.VitalSigns) []responses.ConsultationWarning {
	if vitalSigns == nil || vitalSigns.SystolicBP == nil || vitalSigns.DiastolicBP == nil {
		return nil
	}

	systolic := *vitalSigns.SystolicBP
	diastolic := *vitalSigns.DiastolicBP
	var warnings []responses.ConsultationWarning

	if systolic <= diastolic {
		warnings = append(warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodeBPInconsistent,
			Level:   constvars.WarningLevelHigh,
			Message: fmt.Sprintf("Pressão sistólica (%d) deve ser maior que diastólica (%d)", systolic, diastolic),
			Field:   "vital_signs",
			Value:   fmt.Sprintf("%d/%d", systolic, diastolic),
		})
	}

	pulsePressure := systolic - diastolic
	if pulsePressure < 25 {
		warnings = append(warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodePulsePressureLow,
			Level:   constvars.WarningLevelMedium,
			Message: fmt.Sprintf("Pressão de pulso baixa: %d mmHg", pulsePressure),
			Field:   "vital_signs",
			Value:   strconv.Itoa(pulsePressure),
		})
	} else if pulsePressure > 60 {
		warnings = append(warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodePulsePressureHigh,
			Level:   constvars.WarningLevelLow,
			Message: fmt.Sprintf("Pressão de pulso elevada: %d mmHg", pulsePressure),
			Field:   "vital_signs",
			Value:   strconv.Itoa(pulsePressure),
		})
	}

	return warnings
}

// checkSevereAllergies flags only confirmed allergies at moderate severity or
// above. Unconfirmed reports, whatever their stated severity, go through
// checkUnconfirmedAllergies instead.
func (v *clinicalValidator) checkSevereAllergies(allergies []requests.Allergy) []responses.ConsultationWarning {
	var warnings []responses.ConsultationWarning
	for idx, allergy := range allergies {
		if !allergy.Confirmed {
			continue
		}
		switch allergy.Severity {
		case constvars.AllergySeverityModerate, constvars.AllergySeveritySevere, constvars.AllergySeverityLifeThreatening:
			warnings = append(warnings, responses.ConsultationWarning{
				Code:    constvars.WarningCodeSevereAllergiesPresent,
				Level:   constvars.WarningLevelHigh,
				Message: fmt.Sprintf("Paciente possui alergia grave confirmada: %s (%s)", allergy.Allergen, constvars.AllergySeverityLabels[allergy.Severity]),
				Field:   fmt.Sprintf("allergies[%d]", idx),
				Value:   allergy.Allergen,
			})
		}
	}
	return warnings
}

func (v *clinicalValidator) checkPregnancy(request *requests.CreateConsultation) []responses.ConsultationWarning {
	if !request.Patient.IsPregnant {
		return nil
	}

	var warnings []responses.ConsultationWarning
	if age, ok := utils.CalculateAge(request.Patient.BirthDate, request.ConsultationDate); ok {
		if age < 14 {
			warnings = append(warnings, responses.ConsultationWarning{
				Code:    constvars.WarningCodePregnancyYoungAge,
				Level:   constvars.WarningLevelHigh,
				Message: fmt.Sprintf("Gravidez em paciente com %d anos requer atenção especial", age),
				Field:   "patient.is_pregnant",
				Value:   strconv.Itoa(age),
			})
		} else if age > 45 {
			warnings = append(warnings, responses.ConsultationWarning{
				Code:    constvars.WarningCodePregnancyAdvancedAge,
				Level:   constvars.WarningLevelMedium,
				Message: fmt.Sprintf("Gravidez em paciente com %d anos (idade materna avançada)", age),
				Field:   "patient.is_pregnant",
				Value:   strconv.Itoa(age),
			})
		}
	}

	if request.Patient.GestationalWeeks != nil && *request.Patient.GestationalWeeks > 42 {
		warnings = append(warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodeGestationalWeeksHigh,
			Level:   constvars.WarningLevelHigh,
			Message: fmt.Sprintf("Idade gestacional de %d semanas (pós-termo)", *request.Patient.GestationalWeeks),
			Field:   "patient.gestational_weeks",
			Value:   strconv.Itoa(*request.Patient.GestationalWeeks),
		})
	}

	return warnings
}

func (v *clinicalValidator) checkAgeSpecific(request *requests.CreateConsultation) []responses.ConsultationWarning {
	age, ok := utils.CalculateAge(request.Patient.BirthDate, request.ConsultationDate)
	if !ok || request.VitalSigns == nil {
		return nil
	}

	var warnings []responses.ConsultationWarning
	if age < 12 && request.VitalSigns.HeartRate != nil && *request.VitalSigns.HeartRate < 70 {
		warnings = append(warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodePediatricHRLow,
			Level:   constvars.WarningLevelMedium,
			Message: fmt.Sprintf("FC de %d bpm pode ser baixa para paciente pediátrico (%d anos)", *request.VitalSigns.HeartRate, age),
			Field:   "vital_signs.heart_rate",
			Value:   strconv.Itoa(*request.VitalSigns.HeartRate),
		})
	}
	return warnings
}

// checkMedications compares end dates against the consultation date, not the
// wall clock, so the same record always yields the same warnings.
func (v *clinicalValidator) checkMedications(request *requests.CreateConsultation) []responses.ConsultationWarning {
	consultationDate, err := time.Parse("2006-01-02", request.ConsultationDate)
	if err != nil {
		return nil
	}

	var warnings []responses.ConsultationWarning
	for idx, medication := range request.CurrentMedications {
		if medication.StartDate == "" {
			warnings = append(warnings, responses.ConsultationWarning{
				Code:    constvars.WarningCodeMedicationNoStartDate,
				Level:   constvars.WarningLevelInfo,
				Message: fmt.Sprintf("Medicamento '%s' sem data de início", medication.ActiveIngredient),
				Field:   fmt.Sprintf("current_medications[%d].start_date", idx),
				Value:   "null",
			})
		}

		if medication.EndDate != "" {
			endDate, parseErr := time.Parse("2006-01-02", medication.EndDate)
			if parseErr == nil && endDate.Before(consultationDate) {
				warnings = append(warnings, responses.ConsultationWarning{
					Code:    constvars.WarningCodeMedicationEnded,
					Level:   constvars.WarningLevelLow,
					Message: fmt.Sprintf("Medicamento '%s' com data de término no passado (%s)", medication.ActiveIngredient, medication.EndDate),
					Field:   fmt.Sprintf("current_medications[%d].end_date", idx),
					Value:   medication.EndDate,
				})
			}
		}
	}
	return warnings
}

func (v *clinicalValidator) checkUnconfirmedAllergies(allergies []requests.Allergy) []responses.ConsultationWarning {
	unconfirmed := 0
	for _, allergy := range allergies {
		if !allergy.Confirmed {
			unconfirmed++
		}
	}
	if unconfirmed == 0 {
		return nil
	}

	return []responses.ConsultationWarning{{
		Code:    constvars.WarningCodeUnconfirmedAllergies,
		Level:   constvars.WarningLevelInfo,
		Message: fmt.Sprintf("%d alergia(s) não confirmada(s) por exame", unconfirmed),
		Field:   "allergies",
		Value:   strconv.Itoa(unconfirmed),
	}}
}

func (v *clinicalValidator) checkEmergencyVitals(request *requests.CreateConsultation) []responses.ConsultationWarning {
	if request.ConsultationType != constvars.ConsultationTypeEmergency || request.VitalSigns != nil {
		return nil
	}

	return []responses.ConsultationWarning{{
		Code:    constvars.WarningCodeEmergencyNoVitals,
		Level:   constvars.WarningLevelMedium,
		Message: "Consulta de emergência sem sinais vitais registrados",
		Field:   "vital_signs",
		Value:   "null",
	}}
}
