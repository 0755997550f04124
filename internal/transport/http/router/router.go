package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/baechuer/visit-service/internal/config"
	"github.com/baechuer/visit-service/internal/metrics"
	"github.com/baechuer/visit-service/internal/transport/http/handlers"
	mw "github.com/baechuer/visit-service/internal/transport/http/middleware"
)

type Handlers struct {
	Events *handlers.EventsHandler
	Cities *handlers.CitiesHandler
	Stats  *handlers.StatsHandler
	Wizard *handlers.WizardHandler
	Health *handlers.HealthHandler
}

func New(h Handlers, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(mw.AccessLog)

	r.Get("/healthz", h.Health.Healthz)
	r.Handle("/metrics", metrics.MetricsHandler())

	r.Route("/visit/v1", func(r chi.Router) {
		if cfg.RLEnabled {
			r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
		}

		r.Get("/events", h.Events.List)
		r.Get("/events/range", h.Events.ListRange)
		r.Get("/events/{event_id}", h.Events.Get)
		r.Post("/events", h.Events.Create)
		r.Put("/events", h.Events.Replace)

		r.Get("/cities", h.Cities.List)
		r.Get("/cities/{city_id}", h.Cities.Get)
		r.Put("/cities", h.Cities.Replace)
		r.Get("/postcodes", h.Cities.PostCodes)
		r.Get("/postcodes/{post_code}/cities", h.Cities.ByPostCode)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/per-day", h.Stats.PerDay)
			r.Get("/kind", h.Stats.Kind)
			r.Get("/gender", h.Stats.Gender)
			r.Get("/age", h.Stats.Age)
			r.Get("/postcode", h.Stats.PostCode)
			r.Get("/top-cities", h.Stats.TopCities)
			r.Get("/dashboard", h.Stats.Dashboard)
		})

		r.Post("/wizards", h.Wizard.Start)
		r.Route("/wizards/{wizard_id}", func(r chi.Router) {
			r.Get("/", h.Wizard.Get)
			r.Delete("/", h.Wizard.Cancel)
			r.Post("/{step}", h.Wizard.Set)
			r.Delete("/{step}", h.Wizard.Reset)
		})
	})

	return r
}
