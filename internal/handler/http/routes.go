package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withHashing)

		r.Post("/api/ipc/{channel}", h.send)
		r.Post("/api/ipc/{channel}/invoke", h.invoke)
		r.Get("/api/vault-sources", h.listVaultSources)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(hideMethodNotAllowed)

	return router
}
