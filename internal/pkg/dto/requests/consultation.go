package requests

// CreateConsultation is the payload for POST /consultations. Schema-level
// validation (required fields, enums, patterns, numeric bounds) happens at
// the controller via the validate tags below; everything past that point
// may assume these invariants hold.
type CreateConsultation struct {
	Patient               Patient      `json:"patient" validate:"required"`
	ConsultationDate      string       `json:"consultation_date" validate:"required,datetime=2006-01-02"`
	ConsultationType      string       `json:"consultation_type" validate:"omitempty,oneof=first_visit follow_up emergency telemedicine routine"`
	FacilityName          string       `json:"facility_name" validate:"omitempty,max=200"`
	ChiefComplaint        string       `json:"chief_complaint" validate:"required,min=5,max=500"`
	HistoryPresentIllness string       `json:"history_present_illness" validate:"omitempty,max=5000"`
	VitalSigns            *VitalSigns  `json:"vital_signs"`
	PhysicalExamination   string       `json:"physical_examination" validate:"omitempty,max=5000"`
	CurrentMedications    []Medication `json:"current_medications" validate:"max=50,dive"`
	Allergies             []Allergy    `json:"allergies" validate:"max=30,dive"`
	PastMedicalHistory    []string     `json:"past_medical_history" validate:"max=50"`
	FamilyHistory         []string     `json:"family_history" validate:"max=30"`
	SocialHistory         string       `json:"social_history" validate:"omitempty,max=1000"`
	ProfessionalName      string       `json:"professional_name" validate:"required,min=3,max=200"`
	ProfessionalCouncilID string       `json:"professional_council_id" validate:"omitempty,max=50,council_id"`
	Specialty             string       `json:"specialty" validate:"omitempty,max=100"`
	TreatmentPlan         string       `json:"treatment_plan" validate:"omitempty,max=5000"`
	AdditionalNotes       string       `json:"additional_notes" validate:"omitempty,max=2000"`
	Strategy              string       `json:"strategy" validate:"omitempty,oneof=rule_based llm_based"`
}

type Patient struct {
	FullName         string `json:"full_name" validate:"required,min=2,max=200"`
	CPF              string `json:"cpf" validate:"required,cpf"`
	BirthDate        string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	BiologicalSex    string `json:"biological_sex" validate:"required,oneof=male female intersex"`
	BloodType        string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	IsPregnant       bool   `json:"is_pregnant"`
	GestationalWeeks *int   `json:"gestational_weeks" validate:"omitempty,gte=1,lte=45"`
}

// VitalSigns fields are independently optional, any subset may be supplied.
// The numeric bounds are physical plausibility limits, not clinical bands;
// clinical bands live in the validator.
type VitalSigns struct {
	SystolicBP         *int     `json:"systolic_bp" validate:"omitempty,gte=40,lte=300"`
	DiastolicBP        *int     `json:"diastolic_bp" validate:"omitempty,gte=20,lte=200"`
	HeartRate          *int     `json:"heart_rate" validate:"omitempty,gte=20,lte=300"`
	RespiratoryRate    *int     `json:"respiratory_rate" validate:"omitempty,gte=4,lte=60"`
	TemperatureCelsius *float64 `json:"temperature_celsius" validate:"omitempty,gte=30,lte=45"`
	OxygenSaturation   *int     `json:"oxygen_saturation" validate:"omitempty,gte=50,lte=100"`
	PainScale          *int     `json:"pain_scale" validate:"omitempty,gte=0,lte=10"`
	WeightKg           *float64 `json:"weight_kg" validate:"omitempty,gte=0.5,lte=500"`
	HeightCm           *float64 `json:"height_cm" validate:"omitempty,gte=30,lte=280"`
}

type Medication struct {
	ActiveIngredient string `json:"active_ingredient" validate:"required,min=2,max=200"`
	CommercialName   string `json:"commercial_name" validate:"omitempty,max=200"`
	Dosage           string `json:"dosage" validate:"required,min=1,max=50"`
	Frequency        string `json:"frequency" validate:"required,oneof=1x/day 2x/day 3x/day 4x/day q6h q8h q12h prn 1x/week continuous"`
	Route            string `json:"route" validate:"required,oneof=oral sublingual iv im sc topical inhalation ophthalmic otic nasal rectal transdermal"`
	StartDate        string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Prescriber       string `json:"prescriber" validate:"omitempty,max=200"`
	Notes            string `json:"notes" validate:"omitempty,max=500"`
}

type Allergy struct {
	Allergen            string `json:"allergen" validate:"required,min=2,max=200"`
	ReactionType        string `json:"reaction_type" validate:"required,oneof=allergic intolerance adverse"`
	Severity            string `json:"severity" validate:"required,oneof=mild moderate severe life_threatening"`
	ReactionDescription string `json:"reaction_description" validate:"omitempty,max=500"`
	DiagnosedDate       string `json:"diagnosed_date" validate:"omitempty,datetime=2006-01-02"`
	Confirmed           bool   `json:"confirmed"`
}
