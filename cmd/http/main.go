package main

import (
	"context"
	"healthtech-service/internal/app/config"
	"healthtech-service/internal/app/delivery/http/controllers"
	"healthtech-service/internal/app/delivery/http/middlewares"
	"healthtech-service/internal/app/delivery/http/routers"
	"healthtech-service/internal/app/drivers/logger"
	"healthtech-service/internal/app/services/consultations"
	"healthtech-service/internal/app/services/shared/gemini"
	"healthtech-service/internal/app/services/summarizers"
	"healthtech-service/internal/app/services/validators"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// Clinical validator
	clinicalValidator := validators.NewClinicalValidator(bootstrap.ZapLogger)

	// Summarizers
	ruleBasedSummarizer := summarizers.NewRuleBasedSummarizer(bootstrap.ZapLogger)

	geminiConfig := bootstrap.InternalConfig.Gemini
	geminiClient := gemini.NewGeminiClient(
		geminiConfig.BaseURL,
		geminiConfig.APIKey,
		geminiConfig.Model,
		geminiConfig.MaxRequestsPerSecond,
		bootstrap.ZapLogger,
	)
	llmEnabled := geminiConfig.APIKey != ""
	llmSummarizer := summarizers.NewLLMBasedSummarizer(
		geminiClient,
		llmEnabled,
		time.Second*time.Duration(geminiConfig.TimeoutInSeconds),
		bootstrap.ZapLogger,
	)

	// Consultation
	consultationUsecase := consultations.NewConsultationUsecase(
		clinicalValidator,
		ruleBasedSummarizer,
		llmSummarizer,
		bootstrap.ZapLogger,
	)
	consultationController := controllers.NewConsultationController(
		bootstrap.ZapLogger,
		consultationUsecase,
		bootstrap.InternalConfig.Summarizer.DefaultStrategy,
	)

	// Health
	healthController := controllers.NewHealthController(
		bootstrap.ZapLogger,
		bootstrap.InternalConfig.App.Version,
		bootstrap.InternalConfig.Summarizer.DefaultStrategy,
		llmEnabled,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
		middlewares,
		consultationController,
		healthController,
	)
}
