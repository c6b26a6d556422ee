package constvars

// RuleEngineVersion identifies the deterministic rule set in effect.
// Bump it whenever a clinical range, warning rule or section layout changes.
const RuleEngineVersion = "1.0.0"

const (
	StrategyRuleBased   = "rule_based"
	StrategyLLMBased    = "llm_based"
	StrategyLLMFallback = "llm_fallback"
)

const (
	SectionIdentification   = "identification"
	SectionComplaintHistory = "complaint_history"
	SectionVitalSigns       = "vital_signs"
	SectionBackground       = "background"
	SectionPhysicalExam     = "physical_exam"
	SectionAssessment       = "assessment"
	SectionPlan             = "plan"
)

// Section order values are fixed per code. Omitted sections leave gaps,
// the remaining orders never compact into 1..N.
var SectionOrders = map[string]int{
	SectionIdentification:   1,
	SectionComplaintHistory: 2,
	SectionVitalSigns:       3,
	SectionBackground:       4,
	SectionPhysicalExam:     5,
	SectionAssessment:       6,
	SectionPlan:             7,
}

var SectionTitles = map[string]string{
	SectionIdentification:   "Identificação",
	SectionComplaintHistory: "Queixa e História",
	SectionVitalSigns:       "Sinais Vitais",
	SectionBackground:       "Antecedentes e Segurança",
	SectionPhysicalExam:     "Exame Físico",
	SectionAssessment:       "Avaliação",
	SectionPlan:             "Plano",
}

const (
	WarningLevelInfo   = "info"
	WarningLevelLow    = "low"
	WarningLevelMedium = "medium"
	WarningLevelHigh   = "high"
)

const (
	WarningCodeMissingVitalSigns      = "MISSING_VITAL_SIGNS"
	WarningCodeMissingFamilyHistory   = "MISSING_FAMILY_HISTORY"
	WarningCodeMissingPastHistory     = "MISSING_PAST_HISTORY"
	WarningCodeBPInconsistent         = "BP_INCONSISTENT"
	WarningCodePulsePressureLow       = "PULSE_PRESSURE_LOW"
	WarningCodePulsePressureHigh      = "PULSE_PRESSURE_HIGH"
	WarningCodeSevereAllergiesPresent = "SEVERE_ALLERGIES_PRESENT"
	WarningCodeUnconfirmedAllergies   = "UNCONFIRMED_ALLERGIES"
	WarningCodePregnancyYoungAge      = "PREGNANCY_YOUNG_AGE"
	WarningCodePregnancyAdvancedAge   = "PREGNANCY_ADVANCED_AGE"
	WarningCodeGestationalWeeksHigh   = "GESTATIONAL_WEEKS_HIGH"
	WarningCodePediatricHRLow         = "PEDIATRIC_HR_LOW"
	WarningCodeMedicationNoStartDate  = "MEDICATION_NO_START_DATE"
	WarningCodeMedicationEnded        = "MEDICATION_ENDED"
	WarningCodeEmergencyNoVitals      = "EMERGENCY_NO_VITALS"
	WarningCodeTextTruncated          = "TEXT_TRUNCATED"
	WarningCodeDuplicateRemoved       = "DUPLICATE_REMOVED"

	WarningCodeLLMSectionIncomplete   = "LLM_SECTION_INCOMPLETE"
	WarningCodeLLMDiagnosticTerms     = "LLM_DIAGNOSTIC_TERMS_DETECTED"
	WarningCodeLLMGuardrailsTriggered = "LLM_GUARDRAILS_TRIGGERED"
)

// VitalSignRange holds the adult reference band for one measurement.
// Values outside normal raise a warning, values outside critical raise
// a high-level warning.
type VitalSignRange struct {
	MinNormal   float64
	MaxNormal   float64
	MinCritical float64
	MaxCritical float64
	Unit        string
	Label       string
}

const (
	VitalFieldSystolicBP         = "systolic_bp"
	VitalFieldDiastolicBP        = "diastolic_bp"
	VitalFieldHeartRate          = "heart_rate"
	VitalFieldRespiratoryRate    = "respiratory_rate"
	VitalFieldTemperatureCelsius = "temperature_celsius"
	VitalFieldOxygenSaturation   = "oxygen_saturation"
)

// Adult reference bands. Pediatric and geriatric bands differ, the
// validator applies only the age-specific extras on top of these.
var VitalSignRanges = map[string]VitalSignRange{
	VitalFieldSystolicBP: {
		MinNormal:   90,
		MaxNormal:   120,
		MinCritical: 70,
		MaxCritical: 180,
		Unit:        "mmHg",
		Label:       "Pressão sistólica",
	},
	VitalFieldDiastolicBP: {
		MinNormal:   60,
		MaxNormal:   80,
		MinCritical: 40,
		MaxCritical: 120,
		Unit:        "mmHg",
		Label:       "Pressão diastólica",
	},
	VitalFieldHeartRate: {
		MinNormal:   60,
		MaxNormal:   100,
		MinCritical: 40,
		MaxCritical: 150,
		Unit:        "bpm",
		Label:       "Frequência cardíaca",
	},
	VitalFieldRespiratoryRate: {
		MinNormal:   12,
		MaxNormal:   20,
		MinCritical: 8,
		MaxCritical: 30,
		Unit:        "irpm",
		Label:       "Frequência respiratória",
	},
	VitalFieldTemperatureCelsius: {
		MinNormal:   36.0,
		MaxNormal:   37.5,
		MinCritical: 35.0,
		MaxCritical: 40.0,
		Unit:        "°C",
		Label:       "Temperatura",
	},
	VitalFieldOxygenSaturation: {
		MinNormal:   95,
		MaxNormal:   100,
		MinCritical: 90,
		MaxCritical: 100,
		Unit:        "%",
		Label:       "Saturação O2",
	},
}

// VitalSignOrder fixes rule evaluation order for the range checks so the
// warning list is order-stable across runs.
var VitalSignOrder = []string{
	VitalFieldSystolicBP,
	VitalFieldDiastolicBP,
	VitalFieldHeartRate,
	VitalFieldRespiratoryRate,
	VitalFieldTemperatureCelsius,
	VitalFieldOxygenSaturation,
}

const (
	TextLimitHistoryPresentIllness = 2000
	TextLimitPhysicalExamination   = 2000
	TextLimitTreatmentPlan         = 2000
	TextLimitAdditionalNotes       = 1000
	TextLimitSocialHistory         = 500
	TextLimitSectionContent        = 3000
	TextLimitFullSummary           = 15000
)

const (
	BiologicalSexMale     = "male"
	BiologicalSexFemale   = "female"
	BiologicalSexIntersex = "intersex"
)

var BiologicalSexLabels = map[string]string{
	BiologicalSexMale:     "Masculino",
	BiologicalSexFemale:   "Feminino",
	BiologicalSexIntersex: "Intersexo",
}

const (
	ConsultationTypeFirstVisit   = "first_visit"
	ConsultationTypeFollowUp     = "follow_up"
	ConsultationTypeEmergency    = "emergency"
	ConsultationTypeTelemedicine = "telemedicine"
	ConsultationTypeRoutine      = "routine"
)

// One-to-one mapping, no silent default: the first_visit fallback is
// applied at request sanitization when the field is empty, never here.
var ConsultationTypeLabels = map[string]string{
	ConsultationTypeFirstVisit:   "Primeira consulta",
	ConsultationTypeFollowUp:     "Retorno",
	ConsultationTypeEmergency:    "Emergência",
	ConsultationTypeTelemedicine: "Teleconsulta",
	ConsultationTypeRoutine:      "Rotina",
}

const (
	AllergySeverityMild            = "mild"
	AllergySeverityModerate        = "moderate"
	AllergySeveritySevere          = "severe"
	AllergySeverityLifeThreatening = "life_threatening"
)

var AllergySeverityLabels = map[string]string{
	AllergySeverityMild:            "leve",
	AllergySeverityModerate:        "moderada",
	AllergySeveritySevere:          "GRAVE",
	AllergySeverityLifeThreatening: "RISCO DE VIDA",
}

// Terms the LLM guardrail scrubs from generated sections. The engine
// never produces diagnostic content, so generated text must not either.
var ForbiddenDiagnosticTerms = []string{
	"diagnóstico",
	"diagnostico",
	"diagnosticado",
	"hipótese diagnóstica",
	"hipotese diagnostica",
	"suspeita de",
	"sugere",
	"indica",
	"compatível com",
	"compativel com",
	"provável",
	"provavel",
	"possível",
	"possivel",
	"parece ser",
	"aparenta ser",
	"quadro de",
	"característico de",
	"caracteristico de",
	"típico de",
	"tipico de",
	"condizente com",
	"sugestivo de",
	"indicativo de",
	"aponta para",
	"apresenta sinais de",
	"síndrome de",
	"sindrome de",
	"patologia",
	"etiologia",
	"prognóstico",
	"prognostico",
	"diagnosis",
	"diagnosed",
	"suspected",
	"suggests",
	"indicates",
	"compatible with",
	"probable",
	"consistent with",
	"suggestive of",
	"indicative of",
	"pathology",
	"etiology",
	"prognosis",
	"syndrome",
}
