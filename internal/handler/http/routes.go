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

	router.Get("/health", h.health)

	// the websocket carries its credentials in the query string
	router.With(h.withAPIKey).Get("/connect", h.connect)

	router.Group(func(r chi.Router) {
		r.Use(h.withAPIKey, h.auth)

		r.Post("/channels", h.queryChannels)
		r.Post("/channels/{type}/{id}/message", h.sendMessage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(notFound)

	return router
}
