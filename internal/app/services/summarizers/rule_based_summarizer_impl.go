package summarizers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"healthtech-service/internal/app/contracts"
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/dto/responses"
	"healthtech-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ruleBasedSummarizer reorganizes and normalizes the submitted record into
// fixed sections. It never infers diagnoses and never fails on a
// schema-valid consultation, the same input always yields the same output.
type ruleBasedSummarizer struct {
	Log *zap.Logger
}

var (
	ruleBasedSummarizerInstance contracts.Summarizer
	onceRuleBasedSummarizer     sync.Once
)

func NewRuleBasedSummarizer(logger *zap.Logger) contracts.Summarizer {
	onceRuleBasedSummarizer.Do(func() {
		ruleBasedSummarizerInstance = &ruleBasedSummarizer{
			Log: logger,
		}
	})
	return ruleBasedSummarizerInstance
}

func (s *ruleBasedSummarizer) Summarize(request *requests.CreateConsultation) *responses.SummarizerResult {
	result := &responses.SummarizerResult{
		Warnings: []responses.ConsultationWarning{},
	}

	sections := []responses.SummarySection{
		s.buildIdentificationSection(request),
		s.buildComplaintSection(request, result),
	}

	if request.VitalSigns != nil {
		sections = append(sections, s.buildVitalSignsSection(request))
	}

	sections = append(sections, s.buildBackgroundSection(request, result))

	if request.PhysicalExamination != "" {
		sections = append(sections, s.buildPhysicalExamSection(request, result))
	}

	sections = append(sections, s.buildAssessmentSection(request, result))

	if request.TreatmentPlan != "" {
		sections = append(sections, s.buildPlanSection(request, result))
	}

	result.Sections = sections
	result.FullText = s.buildFullText(sections, result)

	return result
}

func (s *ruleBasedSummarizer) buildIdentificationSection(request *requests.CreateConsultation) responses.SummarySection {
	patient := request.Patient

	ageSuffix := ""
	if age, ok := utils.CalculateAge(patient.BirthDate, request.ConsultationDate); ok {
		ageSuffix = fmt.Sprintf(" (%d anos)", age)
	}

	sexLabel, ok := constvars.BiologicalSexLabels[patient.BiologicalSex]
	if !ok {
		sexLabel = patient.BiologicalSex
	}

	lines := []string{
		"Paciente: " + patient.FullName,
		"CPF: " + patient.CPF,
		"Nascimento: " + utils.FormatDateBR(patient.BirthDate) + ageSuffix,
		"Sexo biológico: " + sexLabel,
	}

	if patient.BloodType != "" {
		lines = append(lines, "Tipo sanguíneo: "+patient.BloodType)
	}

	if patient.IsPregnant {
		weeks := "?"
		if patient.GestationalWeeks != nil {
			weeks = strconv.Itoa(*patient.GestationalWeeks)
		}
		lines = append(lines, "Gestante: "+weeks+" semanas")
	}

	typeLabel, ok := constvars.ConsultationTypeLabels[request.ConsultationType]
	if !ok {
		typeLabel = request.ConsultationType
	}

	lines = append(lines,
		"Data da consulta: "+utils.FormatDateBR(request.ConsultationDate),
		"Tipo: "+typeLabel,
	)

	if request.FacilityName != "" {
		lines = append(lines, "Local: "+request.FacilityName)
	}

	lines = append(lines, "Profissional: "+request.ProfessionalName)
	if request.ProfessionalCouncilID != "" {
		lines = append(lines, "Registro: "+request.ProfessionalCouncilID)
	}
	if request.Specialty != "" {
		lines = append(lines, "Especialidade: "+request.Specialty)
	}

	return newSection(constvars.SectionIdentification, strings.Join(lines, " | "))
}

func (s *ruleBasedSummarizer) buildComplaintSection(request *requests.CreateConsultation, result *responses.SummarizerResult) responses.SummarySection {
	parts := []string{"Queixa principal: " + request.ChiefComplaint}

	if request.HistoryPresentIllness != "" {
		hpi, truncated := utils.Truncate(request.HistoryPresentIllness, constvars.TextLimitHistoryPresentIllness)
		if truncated {
			addTruncationWarning(result, "history_present_illness", constvars.TextLimitHistoryPresentIllness, request.HistoryPresentIllness)
		}
		parts = append(parts, "\nHDA: "+utils.NormalizeWhitespace(hpi))
	}

	return newSection(constvars.SectionComplaintHistory, strings.Join(parts, "\n"))
}

func (s *ruleBasedSummarizer) buildVitalSignsSection(request *requests.CreateConsultation) responses.SummarySection {
	vs := request.VitalSigns
	var parts []string

	switch {
	case vs.SystolicBP != nil && vs.DiastolicBP != nil:
		parts = append(parts, fmt.Sprintf("PA: %dx%d mmHg", *vs.SystolicBP, *vs.DiastolicBP))
	case vs.SystolicBP != nil:
		parts = append(parts, fmt.Sprintf("PAS: %d mmHg", *vs.SystolicBP))
	case vs.DiastolicBP != nil:
		parts = append(parts, fmt.Sprintf("PAD: %d mmHg", *vs.DiastolicBP))
	}

	if vs.HeartRate != nil {
		parts = append(parts, fmt.Sprintf("FC: %d bpm", *vs.HeartRate))
	}
	if vs.RespiratoryRate != nil {
		parts = append(parts, fmt.Sprintf("FR: %d irpm", *vs.RespiratoryRate))
	}
	if vs.TemperatureCelsius != nil {
		parts = append(parts, "Tax: "+formatDecimal(*vs.TemperatureCelsius)+"°C")
	}
	if vs.OxygenSaturation != nil {
		parts = append(parts, fmt.Sprintf("SpO2: %d%%", *vs.OxygenSaturation))
	}
	if vs.PainScale != nil {
		parts = append(parts, fmt.Sprintf("Dor: %d/10", *vs.PainScale))
	}
	if vs.WeightKg != nil {
		parts = append(parts, "Peso: "+formatDecimal(*vs.WeightKg)+" kg")
	}
	if vs.HeightCm != nil {
		parts = append(parts, "Altura: "+formatDecimal(*vs.HeightCm)+" cm")
	}

	if vs.WeightKg != nil && vs.HeightCm != nil {
		heightM := *vs.HeightCm / 100
		bmi := *vs.WeightKg / (heightM * heightM)
		parts = append(parts, fmt.Sprintf("IMC: %.1f kg/m²", bmi))
	}

	content := "Não informados"
	if len(parts) > 0 {
		content = strings.Join(parts, " | ")
	}

	return newSection(constvars.SectionVitalSigns, content)
}

func (s *ruleBasedSummarizer) buildBackgroundSection(request *requests.CreateConsultation, result *responses.SummarizerResult) responses.SummarySection {
	var parts []string

	if len(request.Allergies) > 0 {
		items := make([]string, 0, len(request.Allergies))
		for _, allergy := range request.Allergies {
			severity, ok := constvars.AllergySeverityLabels[allergy.Severity]
			if !ok {
				severity = allergy.Severity
			}
			confirmed := "?"
			if allergy.Confirmed {
				confirmed = "✓"
			}
			items = append(items, fmt.Sprintf("%s (%s) %s", allergy.Allergen, severity, confirmed))
		}
		parts = append(parts, "⚠️ ALERGIAS: "+strings.Join(items, "; "))
	} else {
		parts = append(parts, "Alergias: Não informadas")
	}

	if len(request.CurrentMedications) > 0 {
		seen := make(map[string]bool, len(request.CurrentMedications))
		var uniqueMeds []string
		var duplicates []string

		for _, medication := range request.CurrentMedications {
			key := strings.ToLower(medication.ActiveIngredient)
			if seen[key] {
				duplicates = append(duplicates, medication.ActiveIngredient)
				continue
			}
			seen[key] = true
			uniqueMeds = append(uniqueMeds, strings.TrimSpace(medication.ActiveIngredient+" "+medication.Dosage+" "+medication.Frequency))
		}

		if len(duplicates) > 0 {
			addDuplicateWarning(result, "current_medications", duplicates)
		}
		parts = append(parts, "Medicamentos em uso: "+strings.Join(uniqueMeds, "; "))
	} else {
		parts = append(parts, "Medicamentos em uso: Nenhum informado")
	}

	if len(request.PastMedicalHistory) > 0 {
		history, removed := utils.RemoveDuplicates(request.PastMedicalHistory)
		if len(removed) > 0 {
			addDuplicateWarning(result, "past_medical_history", removed)
		}
		parts = append(parts, "Antecedentes pessoais: "+strings.Join(history, "; "))
	} else {
		parts = append(parts, "Antecedentes pessoais: Não informados")
	}

	if len(request.FamilyHistory) > 0 {
		family, removed := utils.RemoveDuplicates(request.FamilyHistory)
		if len(removed) > 0 {
			addDuplicateWarning(result, "family_history", removed)
		}
		parts = append(parts, "Antecedentes familiares: "+strings.Join(family, "; "))
	}

	if request.SocialHistory != "" {
		social, truncated := utils.Truncate(request.SocialHistory, constvars.TextLimitSocialHistory)
		if truncated {
			addTruncationWarning(result, "social_history", constvars.TextLimitSocialHistory, request.SocialHistory)
		}
		parts = append(parts, "História social: "+social)
	}

	return newSection(constvars.SectionBackground, strings.Join(parts, "\n"))
}

func (s *ruleBasedSummarizer) buildPhysicalExamSection(request *requests.CreateConsultation, result *responses.SummarizerResult) responses.SummarySection {
	examText, truncated := utils.Truncate(request.PhysicalExamination, constvars.TextLimitPhysicalExamination)
	if truncated {
		addTruncationWarning(result, "physical_examination", constvars.TextLimitPhysicalExamination, request.PhysicalExamination)
	}

	content := utils.NormalizeWhitespace(examText)
	if content == "" {
		content = "Não realizado"
	}

	return newSection(constvars.SectionPhysicalExam, content)
}

// buildAssessmentSection summarizes the clinical context. It must not carry
// diagnostic content of any kind.
func (s *ruleBasedSummarizer) buildAssessmentSection(request *requests.CreateConsultation, result *responses.SummarizerResult) responses.SummarySection {
	typeLabel, ok := constvars.ConsultationTypeLabels[request.ConsultationType]
	if !ok {
		typeLabel = request.ConsultationType
	}

	parts := []string{
		"Consulta de " + strings.ToLower(typeLabel),
		"realizada em " + utils.FormatDateBR(request.ConsultationDate) + ".",
	}

	if age, ok := utils.CalculateAge(request.Patient.BirthDate, request.ConsultationDate); ok {
		if age < 18 {
			parts = append(parts, fmt.Sprintf("Paciente pediátrico (%d anos).", age))
		} else if age >= 65 {
			parts = append(parts, fmt.Sprintf("Paciente idoso (%d anos).", age))
		}
	}

	if request.Patient.IsPregnant && request.Patient.GestationalWeeks != nil {
		parts = append(parts, fmt.Sprintf("Gestante de %d semanas.", *request.Patient.GestationalWeeks))
	}

	severe := 0
	for _, allergy := range request.Allergies {
		if allergy.Severity == constvars.AllergySeveritySevere || allergy.Severity == constvars.AllergySeverityLifeThreatening {
			severe++
		}
	}
	if severe > 0 {
		parts = append(parts, fmt.Sprintf("ATENÇÃO: %d alergia(s) grave(s) documentada(s).", severe))
	}

	if request.AdditionalNotes != "" {
		notes, truncated := utils.Truncate(request.AdditionalNotes, constvars.TextLimitAdditionalNotes)
		if truncated {
			addTruncationWarning(result, "additional_notes", constvars.TextLimitAdditionalNotes, request.AdditionalNotes)
		}
		parts = append(parts, "Observações: "+notes)
	}

	return newSection(constvars.SectionAssessment, strings.Join(parts, " "))
}

func (s *ruleBasedSummarizer) buildPlanSection(request *requests.CreateConsultation, result *responses.SummarizerResult) responses.SummarySection {
	planText, truncated := utils.Truncate(request.TreatmentPlan, constvars.TextLimitTreatmentPlan)
	if truncated {
		addTruncationWarning(result, "treatment_plan", constvars.TextLimitTreatmentPlan, request.TreatmentPlan)
	}

	content := utils.NormalizeWhitespace(planText)
	if content == "" {
		content = "Não definido"
	}

	return newSection(constvars.SectionPlan, content)
}

func (s *ruleBasedSummarizer) buildFullText(sections []responses.SummarySection, result *responses.SummarizerResult) string {
	ordered := make([]responses.SummarySection, len(sections))
	copy(ordered, sections)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	var parts []string
	for _, section := range ordered {
		parts = append(parts, "=== "+strings.ToUpper(section.Title)+" ===", section.Content, "")
	}

	fullText := strings.TrimSpace(strings.Join(parts, "\n"))

	if runes := []rune(fullText); len(runes) > constvars.TextLimitFullSummary {
		addTruncationWarning(result, "full_summary", constvars.TextLimitFullSummary, fullText)
		fullText = string(runes[:constvars.TextLimitFullSummary-3]) + "..."
	}

	return fullText
}

func newSection(code, content string) responses.SummarySection {
	return responses.SummarySection{
		Title:   constvars.SectionTitles[code],
		Code:    code,
		Content: content,
		Order:   constvars.SectionOrders[code],
	}
}

// The warning value carries the original length so the reader can tell how
// much was cut.
func addTruncationWarning(result *responses.SummarizerResult, field string, limit int, original string) {
	result.Warnings = append(result.Warnings, responses.ConsultationWarning{
		Code:    constvars.WarningCodeTextTruncated,
		Level:   constvars.WarningLevelInfo,
		Message: fmt.Sprintf("Campo '%s' truncado para %d caracteres", field, limit),
		Field:   field,
		Value:   strconv.Itoa(len([]rune(original))),
	})
}

func addDuplicateWarning(result *responses.SummarizerResult, field string, duplicates []string) {
	preview := duplicates
	if len(preview) > 3 {
		preview = preview[:3]
	}
	result.Warnings = append(result.Warnings, responses.ConsultationWarning{
		Code:    constvars.WarningCodeDuplicateRemoved,
		Level:   constvars.WarningLevelInfo,
		Message: fmt.Sprintf("Duplicata(s) removida(s) de '%s': %s", field, strings.Join(preview, ", ")),
		Field:   field,
		Value:   strconv.Itoa(len(duplicates)),
	})
}

func formatDecimal(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
