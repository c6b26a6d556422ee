package routers

import (
	"healthtech-service/internal/app/delivery/http/controllers"
	"healthtech-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRouter(router chi.Router, middlewares *middlewares.Middlewares, consultationController *controllers.ConsultationController) {
	router.With(middlewares.APIKeyAuth).Post("/", consultationController.CreateConsultationSummary)
}
