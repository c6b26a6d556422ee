package responses

import "time"

type HealthCheck struct {
	Status            string    `json:"status"`
	Service           string    `json:"service"`
	Version           string    `json:"version"`
	RuleEngineVersion string    `json:"rule_engine_version"`
	DefaultStrategy   string    `json:"default_strategy"`
	LLMEnabled        bool      `json:"llm_enabled"`
	Timestamp         time.Time `json:"timestamp"`
}
