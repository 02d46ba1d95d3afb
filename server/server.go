package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/promptdeck/promptdeck/config"
	"github.com/promptdeck/promptdeck/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Origins,

		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},

		AllowCredentials: true,

		MaxAge: 300,
	}))

	r.Get("/health", handleHealth(cfg))

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	r.Route("/api", h.Attach)

	return &Server{
		Config: cfg,

		handler: r,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	server := &http.Server{
		Addr:    s.Address,
		Handler: s.handler,

		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("server listening", "address", s.Address)

	return server.ListenAndServe()
}

func handleHealth(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)

		enc.Encode(map[string]any{
			"status": "ok",
			"port":   cfg.Port,
		})
	}
}
