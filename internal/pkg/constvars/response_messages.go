package constvars

const (
	ResponseUnknown = "unknown"
)

// Success messages
const (
	CreateConsultationSummarySuccessMessage = "consultation summary generated successfully"
	HealthCheckSuccessMessage               = "service is healthy"
)
