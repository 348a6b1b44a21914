package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/juho05/diacritics/config"
	"github.com/juho05/diacritics/repos"
)

type Handler struct {
	router chi.Router
	// DB is nil if no database is configured.
	DB     repos.DB
	Config config.Config
}

func New(db repos.DB, conf config.Config) *Handler {
	h := &Handler{
		DB:     db,
		Config: conf,
	}
	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", h.registerAPIRoutes)

	h.router = r
}

func (h *Handler) registerAPIRoutes(r chi.Router) {
	r.Use(h.queryMiddleware)
	registerRoute(r, "/ping", h.handlePing)
	registerRoute(r, "/removeDiacritics", h.handleRemoveDiacritics)
	r.Post("/removeDiacriticsBatch", h.handleRemoveDiacriticsBatch)
	registerRoute(r, "/hasDiacritics", h.handleHasDiacritics)
	registerRoute(r, "/getSearchKey", h.handleGetSearchKey)
	r.Get("/getMappings", h.handleGetMappings)
	r.Get("/getLanguages", h.handleGetLanguages)
	r.Get("/getMappingSets", h.handleGetMappingSets)
	r.Post("/reloadMappings", h.handleReloadMappings)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.StripSlashes(h.router).ServeHTTP(w, r)
}
