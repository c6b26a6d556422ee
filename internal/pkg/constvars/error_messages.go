package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"oneof":      "must be one of [%s]",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"lt":         "must be less than %s",
	"lte":        "must be less than or equal to %s",
	"datetime":   "must be a date in format %s",
	"cpf":        "must match format XXX.XXX.XXX-XX",
	"council_id": "must match format COUNCIL-UF NUMBER, e.g. CRM-SP 123456",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientRequestBodyTooLarge           = "request body too large"
	ErrClientPregnancyInconsistent         = "is_pregnant cannot be true when biological_sex is male"
	ErrClientGestationalWeeksRequired      = "gestational_weeks is required when is_pregnant is true"
)

// Error messages for developers
const (
	ErrDevValidationFailed        = "Input validation failed"
	ErrDevInvalidInput            = "Invalid input"
	ErrDevCannotParseJSON         = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON       = "Failed to marshal JSON payload"
	ErrDevMissingRequestID        = "Request ID not found in request context"
	ErrDevServerDeadlineExceeded  = "Server deadline exceeded while processing request"
	ErrDevInvalidAPIKey           = "Provided API key does not match configured key"
	ErrDevRequestBodyTooLarge     = "Request body exceeds configured limit"
	ErrDevPregnancyInconsistent   = "Pregnancy flag inconsistent with biological sex"
	ErrDevGestationalWeeksMissing = "Gestational weeks missing for pregnant patient"
	ErrDevCreateHTTPRequest       = "Failed to create outbound HTTP request"
	ErrDevSendHTTPRequest         = "Failed to send outbound HTTP request"

	ErrDevLLMNotConfigured     = "LLM provider is not configured, missing API key"
	ErrDevLLMTimeout           = "LLM request exceeded timeout of %s"
	ErrDevLLMProvider          = "LLM provider returned an error: %s"
	ErrDevLLMEmptyResponse     = "LLM provider returned an empty response"
	ErrDevLLMMalformedResponse = "LLM response failed parsing: %s"
)
