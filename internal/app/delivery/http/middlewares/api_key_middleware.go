package middlewares

import (
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/exceptions"
	"healthtech-service/internal/pkg/utils"
	"net/http"
)

// APIKeyAuth enforces the configured key. When APP_API_KEY is unset the
// middleware is a no-op and the API stays open.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configuredKey := m.InternalConfig.App.APIKey
		if configuredKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey != configuredKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
