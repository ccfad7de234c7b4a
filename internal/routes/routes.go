package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"NUTRINO_BACK-END/internal/config"
	"NUTRINO_BACK-END/internal/handlers"
	"NUTRINO_BACK-END/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Health       *handlers.HealthHandler
	Webhook      *handlers.WebhookHandler
	HealthStatus *handlers.HealthStatusHandler
	Users        *handlers.UserHandler
}

// SetupRoutes configures all application routes
func SetupRoutes(h Handlers, auth config.AuthConfig) *http.ServeMux {
	mux := http.NewServeMux()
	protected := middleware.AuthMiddleware(auth)

	// Health check routes
	mux.HandleFunc("GET /healthz", h.Health.HealthCheck)
	mux.HandleFunc("GET /livez", h.Health.LivenessCheck)
	mux.HandleFunc("GET /readyz", h.Health.ReadinessCheck)

	// Clerk webhook, authenticated by its Svix signature
	mux.HandleFunc("POST /api/v1/auth/webhook", h.Webhook.Receive)

	// Health profile routes
	mux.Handle("POST /api/v1/healthstatus", protected(http.HandlerFunc(h.HealthStatus.Upsert)))
	mux.Handle("GET /api/v1/healthstatus/{userId}", protected(http.HandlerFunc(h.HealthStatus.Get)))
	mux.Handle("DELETE /api/v1/healthstatus/{userId}", protected(http.HandlerFunc(h.HealthStatus.Delete)))

	// User routes
	mux.Handle("GET /api/v1/users/{clerkId}", protected(http.HandlerFunc(h.Users.Details)))

	// API docs
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)

	return mux
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Nutrino backend is running."))
}
