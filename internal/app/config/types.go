package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App        App
		Summarizer Summarizer
		Gemini     Gemini
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		APIKey                     string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	Summarizer struct {
		DefaultStrategy string
	}

	Gemini struct {
		APIKey               string
		Model                string
		BaseURL              string
		TimeoutInSeconds     int
		MaxRequestsPerSecond float64
	}
)
