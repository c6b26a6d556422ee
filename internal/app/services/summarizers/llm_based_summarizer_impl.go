package summarizers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"healthtech-service/internal/app/contracts"
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/dto/requests"
	"healthtech-service/internal/pkg/dto/responses"
	"healthtech-service/internal/pkg/exceptions"
	"healthtech-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// systemPrompt pins the model to pure reorganization. The assessment section
// must stay free of diagnostic content, the guardrail pass enforces it again
// after generation.
const systemPrompt = `Você é um assistente de documentação médica. Sua função é APENAS reorganizar e formatar dados clínicos fornecidos.

REGRAS OBRIGATÓRIAS - VIOLAÇÃO RESULTA EM REJEIÇÃO:

1. NUNCA inferir, sugerir ou mencionar diagnósticos
2. NUNCA usar termos como: "diagnóstico", "suspeita de", "sugere", "indica", "compatível com", "provável", "possível"
3. NUNCA criar hipóteses diagnósticas
4. NUNCA inventar dados não fornecidos
5. NUNCA adicionar interpretações clínicas
6. APENAS reorganizar os dados EXATAMENTE como fornecidos
7. APENAS formatar e estruturar as informações

Você deve retornar um JSON com a seguinte estrutura:
{
  "sections": [
    {"title": "string", "code": "string", "content": "string", "order": number}
  ]
}

Seções esperadas (em ordem):
1. identification - Identificação do paciente
2. complaint_history - Queixa e história
3. vital_signs - Sinais vitais (se fornecidos)
4. background - Antecedentes e segurança
5. physical_exam - Exame físico (se fornecido)
6. assessment - Avaliação (APENAS contexto, SEM diagnóstico)
7. plan - Plano (se fornecido)

IMPORTANTE: A seção "assessment" deve conter APENAS um resumo do contexto da consulta, NUNCA diagnósticos ou hipóteses.`

var (
	fenceOpenRegex  = regexp.MustCompile("^```(?:json)?\n?")
	fenceCloseRegex = regexp.MustCompile("\n?```$")
)

type llmBasedSummarizer struct {
	Client  contracts.GenAIClient
	Enabled bool
	Timeout time.Duration
	Log     *zap.Logger
}

var (
	llmBasedSummarizerInstance contracts.LLMSummarizer
	onceLLMBasedSummarizer     sync.Once
)

// NewLLMBasedSummarizer builds the generative path. When enabled is false
// Summarize fails immediately without touching the network. Fallback is not
// handled here, the caller owns it.
func NewLLMBasedSummarizer(client contracts.GenAIClient, enabled bool, timeout time.Duration, logger *zap.Logger) contracts.LLMSummarizer {
	onceLLMBasedSummarizer.Do(func() {
		llmBasedSummarizerInstance = &llmBasedSummarizer{
			Client:  client,
			Enabled: enabled,
			Timeout: timeout,
			Log:     logger,
		}
	})
	return llmBasedSummarizerInstance
}

func (s *llmBasedSummarizer) Summarize(ctx context.Context, request *requests.CreateConsultation) (*responses.SummarizerResult, string, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("llmBasedSummarizer.Summarize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !s.Enabled {
		return nil, "", exceptions.ErrLLMNotConfigured()
	}

	userPrompt, err := buildUserPrompt(request)
	if err != nil {
		return nil, "", err
	}

	generateCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	responseText, err := s.Client.GenerateContent(generateCtx, systemPrompt, userPrompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(generateCtx.Err(), context.DeadlineExceeded) {
			return nil, "", exceptions.ErrLLMTimeout(err, s.Timeout.String())
		}
		return nil, "", err
	}

	result := &responses.SummarizerResult{
		Warnings: []responses.ConsultationWarning{},
	}

	sections, err := parseLLMResponse(responseText, result)
	if err != nil {
		return nil, "", err
	}

	sections = applyGuardrails(sections, result)
	result.Sections = sections
	result.FullText = buildLLMFullText(sections)

	s.Log.Info("llmBasedSummarizer.Summarize succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("section_count", len(sections)),
	)
	return result, s.Client.ModelName(), nil
}

type promptPatient struct {
	Nome                string `json:"nome"`
	CPF                 string `json:"cpf"`
	DataNascimento      string `json:"data_nascimento"`
	SexoBiologico       string `json:"sexo_biologico"`
	TipoSanguineo       string `json:"tipo_sanguineo,omitempty"`
	Gestante            bool   `json:"gestante"`
	SemanasGestacionais *int   `json:"semanas_gestacionais,omitempty"`
}

type promptConsultation struct {
	Data          string `json:"data"`
	Tipo          string `json:"tipo"`
	Local         string `json:"local,omitempty"`
	Profissional  string `json:"profissional"`
	Registro      string `json:"registro,omitempty"`
	Especialidade string `json:"especialidade,omitempty"`
}

type promptVitalSigns struct {
	PASistolica            *int     `json:"pa_sistolica,omitempty"`
	PADiastolica           *int     `json:"pa_diastolica,omitempty"`
	FrequenciaCardiaca     *int     `json:"frequencia_cardiaca,omitempty"`
	FrequenciaRespiratoria *int     `json:"frequencia_respiratoria,omitempty"`
	Temperatura            *float64 `json:"temperatura,omitempty"`
	SaturacaoO2            *int     `json:"saturacao_o2,omitempty"`
	EscalaDor              *int     `json:"escala_dor,omitempty"`
	PesoKg                 *float64 `json:"peso_kg,omitempty"`
	AlturaCm               *float64 `json:"altura_cm,omitempty"`
}

type promptMedication struct {
	PrincipioAtivo string `json:"principio_ativo"`
	Dosagem        string `json:"dosagem"`
	Frequencia     string `json:"frequencia"`
	Via            string `json:"via"`
}

type promptAllergy struct {
	Alergeno   string `json:"alergeno"`
	Tipo       string `json:"tipo"`
	Gravidade  string `json:"gravidade"`
	Confirmada bool   `json:"confirmada"`
}

type promptData struct {
	Paciente               promptPatient      `json:"paciente"`
	Consulta               promptConsultation `json:"consulta"`
	QueixaPrincipal        string             `json:"queixa_principal"`
	HistoriaDoencaAtual    string             `json:"historia_doenca_atual,omitempty"`
	SinaisVitais           *promptVitalSigns  `json:"sinais_vitais,omitempty"`
	Medicamentos           []promptMedication `json:"medicamentos,omitempty"`
	Alergias               []promptAllergy    `json:"alergias,omitempty"`
	AntecedentesPessoais   []string           `json:"antecedentes_pessoais"`
	AntecedentesFamiliares []string           `json:"antecedentes_familiares"`
	HistoriaSocial         string             `json:"historia_social,omitempty"`
	ExameFisico            string             `json:"exame_fisico,omitempty"`
	PlanoTratamento        string             `json:"plano_tratamento,omitempty"`
	Observacoes            string             `json:"observacoes,omitempty"`
}

func buildUserPrompt(request *requests.CreateConsultation) (string, error) {
	data := promptData{
		Paciente: promptPatient{
			Nome:                request.Patient.FullName,
			CPF:                 request.Patient.CPF,
			DataNascimento:      request.Patient.BirthDate,
			SexoBiologico:       request.Patient.BiologicalSex,
			TipoSanguineo:       request.Patient.BloodType,
			Gestante:            request.Patient.IsPregnant,
			SemanasGestacionais: request.Patient.GestationalWeeks,
		},
		Consulta: promptConsultation{
			Data:          request.ConsultationDate,
			Tipo:          request.ConsultationType,
			Local:         request.FacilityName,
			Profissional:  request.ProfessionalName,
			Registro:      request.ProfessionalCouncilID,
			Especialidade: request.Specialty,
		},
		QueixaPrincipal:        request.ChiefComplaint,
		HistoriaDoencaAtual:    request.HistoryPresentIllness,
		AntecedentesPessoais:   request.PastMedicalHistory,
		AntecedentesFamiliares: request.FamilyHistory,
		HistoriaSocial:         request.SocialHistory,
		ExameFisico:            request.PhysicalExamination,
		PlanoTratamento:        request.TreatmentPlan,
		Observacoes:            request.AdditionalNotes,
	}

	if request.VitalSigns != nil {
		data.SinaisVitais = &promptVitalSigns{
			PASistolica:            request.VitalSigns.SystolicBP,
			PADiastolica:           request.VitalSigns.DiastolicBP,
			FrequenciaCardiaca:     request.VitalSigns.HeartRate,
			FrequenciaRespiratoria: request.VitalSigns.RespiratoryRate,
			Temperatura:            request.VitalSigns.TemperatureCelsius,
			SaturacaoO2:            request.VitalSigns.OxygenSaturation,
			EscalaDor:              request.VitalSigns.PainScale,
			PesoKg:                 request.VitalSigns.WeightKg,
			AlturaCm:               request.VitalSigns.HeightCm,
		}
	}

	for _, medication := range request.CurrentMedications {
		data.Medicamentos = append(data.Medicamentos, promptMedication{
			PrincipioAtivo: medication.ActiveIngredient,
			Dosagem:        medication.Dosage,
			Frequencia:     medication.Frequency,
			Via:            medication.Route,
		})
	}

	for _, allergy := range request.Allergies {
		data.Alergias = append(data.Alergias, promptAllergy{
			Alergeno:   allergy.Allergen,
			Tipo:       allergy.ReactionType,
			Gravidade:  allergy.Severity,
			Confirmada: allergy.Confirmed,
		})
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	return fmt.Sprintf(`Reorganize os seguintes dados de consulta médica em um resumo estruturado.

LEMBRE-SE: Apenas reorganize os dados. NÃO faça inferências ou diagnósticos.

DADOS DA CONSULTA:
%s

Retorne APENAS o JSON com as seções, sem texto adicional.`, string(encoded)), nil
}

type llmSection struct {
	Title   string `json:"title"`
	Code    string `json:"code"`
	Content string `json:"content"`
	Order   *int   `json:"order"`
}

type llmResponse struct {
	Sections []llmSection `json:"sections"`
}

// parseLLMResponse is deliberately defensive: models wrap JSON in code
// fences, drop fields and invent orders. Incomplete sections are skipped
// with a warning, an empty result is an error.
func parseLLMResponse(responseText string, result *responses.SummarizerResult) ([]responses.SummarySection, error) {
	text := strings.TrimSpace(responseText)
	if strings.HasPrefix(text, "```") {
		text = fenceOpenRegex.ReplaceAllString(text, "")
		text = fenceCloseRegex.ReplaceAllString(text, "")
	}

	var parsed llmResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, exceptions.ErrLLMMalformedResponse(err, "response is not valid JSON")
	}

	if len(parsed.Sections) == 0 {
		return nil, exceptions.ErrLLMMalformedResponse(nil, "response missing sections")
	}

	var sections []responses.SummarySection
	for idx, sectionData := range parsed.Sections {
		if sectionData.Title == "" || sectionData.Code == "" || sectionData.Content == "" {
			result.Warnings = append(result.Warnings, responses.ConsultationWarning{
				Code:    constvars.WarningCodeLLMSectionIncomplete,
				Level:   constvars.WarningLevelLow,
				Message: fmt.Sprintf("Seção %d incompleta, ignorada", idx),
			})
			continue
		}

		order := idx + 1
		if sectionData.Order != nil {
			order = *sectionData.Order
		}

		sections = append(sections, responses.SummarySection{
			Title:   clampRunes(sectionData.Title, 100),
			Code:    strings.ReplaceAll(strings.ToLower(clampRunes(sectionData.Code, 50)), " ", "_"),
			Content: clampRunes(sectionData.Content, constvars.TextLimitSectionContent),
			Order:   order,
		})
	}

	if len(sections) == 0 {
		return nil, exceptions.ErrLLMMalformedResponse(nil, "no valid sections parsed")
	}

	return sections, nil
}

// applyGuardrails scrubs forbidden diagnostic terms from generated content.
// Each affected section gets a high warning, one medium warning summarizes
// the pass.
func applyGuardrails(sections []responses.SummarySection, result *responses.SummarizerResult) []responses.SummarySection {
	violationsFound := false

	for i, section := range sections {
		contentLower := strings.ToLower(section.Content)

		var foundTerms []string
		for _, term := range constvars.ForbiddenDiagnosticTerms {
			if strings.Contains(contentLower, term) {
				foundTerms = append(foundTerms, term)
			}
		}

		if len(foundTerms) == 0 {
			continue
		}

		violationsFound = true
		preview := foundTerms
		if len(preview) > 3 {
			preview = preview[:3]
		}
		result.Warnings = append(result.Warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodeLLMDiagnosticTerms,
			Level:   constvars.WarningLevelHigh,
			Message: fmt.Sprintf("Termos diagnósticos detectados na seção '%s': %s", section.Title, strings.Join(preview, ", ")),
			Field:   "sections." + section.Code,
		})

		cleaned := section.Content
		for _, term := range foundTerms {
			pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
			cleaned = pattern.ReplaceAllString(cleaned, "[REMOVIDO]")
		}
		sections[i].Content = cleaned
	}

	if violationsFound {
		result.Warnings = append(result.Warnings, responses.ConsultationWarning{
			Code:    constvars.WarningCodeLLMGuardrailsTriggered,
			Level:   constvars.WarningLevelMedium,
			Message: "Guardrails acionados - termos diagnósticos foram removidos",
		})
	}

	return sections
}

func buildLLMFullText(sections []responses.SummarySection) string {
	ordered := make([]responses.SummarySection, len(sections))
	copy(ordered, sections)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	var parts []string
	for _, section := range ordered {
		parts = append(parts, "=== "+strings.ToUpper(section.Title)+" ===", section.Content, "")
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func clampRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
