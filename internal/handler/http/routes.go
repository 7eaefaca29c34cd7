package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// document routes, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/collections/{collection}", func(r chi.Router) {
			r.Get("/", h.getDocument)

			// writes additionally carry a body integrity hash
			r.Group(func(r chi.Router) {
				r.Use(h.checkBodyHash)

				r.Put("/", h.setDocument)
				r.Patch("/field", h.updateField)
				r.Post("/array-union", h.arrayUnion)
				r.Post("/array-remove", h.arrayRemove)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
