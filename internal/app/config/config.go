package config

import (
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			APIKey:                     utils.GetEnvString("APP_API_KEY", ""),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		Summarizer: Summarizer{
			DefaultStrategy: utils.GetEnvString("SUMMARIZER_STRATEGY", constvars.StrategyRuleBased),
		},
		Gemini: Gemini{
			APIKey:               utils.GetEnvString("GEMINI_API_KEY", ""),
			Model:                utils.GetEnvString("GEMINI_MODEL", "gemini-1.5-flash"),
			BaseURL:              utils.GetEnvString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			TimeoutInSeconds:     utils.GetEnvInt("LLM_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond: utils.GetEnvFloat("LLM_MAX_REQUESTS_PER_SECOND", 2),
		},
	}
}
