package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// the web frontend is served from another origin
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
	}))

	router.Get("/", h.index)

	router.Post("/login", h.login)
	router.Post("/signup", h.signup)
	router.Post("/lookup_username", h.lookupUsername)
	router.Post("/query_users", h.queryUsers)
	router.Post("/get_code", h.getCode)

	// operational routes
	router.Get("/save", h.save)
	router.Get("/load", h.load)
	router.Get("/generate_users/{number}", h.generateUsers)
	router.Get("/debug", h.debug)

	return router
}
