package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/categories", h.categories)
		r.Get("/api/leaderboard", h.leaderboard)
		r.Get("/api/chat/models", h.chatModels)
	})

	// routes keyed by the authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/entries/", h.recordEntry)
		r.Get("/api/entries/{kind}", h.listEntries)
		r.Get("/api/entries/{kind}/daily", h.dailyTotal)

		r.Get("/api/summary", h.summary)
		r.Get("/api/progress", h.progress)
		r.Get("/api/feedback", h.feedback)

		r.Get("/api/wishlist/", h.getWishlist)
		r.Put("/api/wishlist/", h.replaceWishlist)
		r.Delete("/api/wishlist/", h.clearWishlist)
		r.Get("/api/wishlist/thumbnail", h.wishlistThumbnail)

		r.Post("/api/chat", h.chat)
		r.Post("/api/chat/ping", h.chatPing)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
