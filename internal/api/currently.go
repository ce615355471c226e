package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"github.com/liamo132/currently-server/internal/auth"
	"github.com/liamo132/currently-server/internal/catalog"
	"github.com/liamo132/currently-server/internal/config"
	"github.com/liamo132/currently-server/internal/database"
	"github.com/liamo132/currently-server/internal/energy"
	"github.com/liamo132/currently-server/internal/metrics"
)

type CurrentlyApp struct {
	log     *log.Logger
	db      database.CurrentlyRepository
	catalog *catalog.Catalog
	calc    energy.Calculator
	tokens  *auth.TokenService
	metrics *metrics.Collector
	srv     *http.Server
}

func NewCurrentlyApp(logger *log.Logger, db database.CurrentlyRepository, cat *catalog.Catalog, mc *metrics.Collector, cfg *config.Config) *CurrentlyApp {
	s := &CurrentlyApp{
		log:     logger,
		db:      db,
		catalog: cat,
		calc:    energy.NewCalculator(cfg.PricePerKWh),
		tokens:  auth.NewTokenService(cfg.SigningKey, cfg.TokenTTL),
		metrics: mc,
	}

	r := chi.NewRouter()

	// public allow-list: auth endpoints, catalogue reads, health, metrics
	r.Get("/healthz", s.healthCheck)
	r.Method(http.MethodGet, "/metrics", mc.Handler())
	r.Post("/api/auth/register", s.register)
	r.Post("/api/auth/login", s.login)
	r.Get("/api/appliances", s.listCatalogue)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/api/auth/session", s.session)

		r.Route("/api/users/me/rooms", func(r chi.Router) {
			r.Get("/", s.listRooms)
			r.Post("/", s.createRoom)
			r.Put("/{id}", s.updateRoom)
			r.Delete("/{id}", s.deleteRoom)
		})

		r.Route("/api/users/me/appliances", func(r chi.Router) {
			r.Get("/", s.listAppliances)
			r.Post("/", s.createAppliance)
			r.Put("/{id}", s.updateAppliance)
			r.Delete("/{id}", s.deleteAppliance)
		})
	})

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept", "Authorization"}),
		handlers.AllowCredentials(),
	)(r)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.srv = srv
	return s
}

func (s *CurrentlyApp) Start() error {
	s.log.Printf("starting server on %s\n", s.srv.Addr)
	return s.srv.ListenAndServe()
}

func (s *CurrentlyApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
