package routers

import (
	"healthtech-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHealthRouter(router chi.Router, healthController *controllers.HealthController) {
	router.Get("/", healthController.CheckHealth)
}
