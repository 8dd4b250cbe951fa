package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/regform/regform-go/internal/metrics"
	"github.com/regform/regform-go/internal/middleware"
)

// Router wires the handlers onto a chi router.
type Router struct {
	Registration *RegistrationHandler
	Generator    *GeneratorHandler
	UI           *UIHandler
	Metrics      *metrics.Metrics

	TokenSecret    string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Handler builds the HTTP handler for the service.
func (rt Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(rt.Metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", rt.Metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/fields/validate", rt.Registration.HandleValidateField)
		r.Post("/password/strength", rt.Registration.HandleStrength)
		r.Get("/particles", rt.UI.HandleParticles)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(rt.RateLimitRPS, rt.RateLimitBurst))
			r.Post("/registration", rt.Registration.HandleRegister)
			r.Post("/generate", rt.Generator.HandleGenerate)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.ConfirmationAuth(rt.TokenSecret))
			r.Get("/registration/confirm", rt.Registration.HandleConfirm)
		})
	})

	return r
}
