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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
	})

	// routes behind token auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/tasks", func(r chi.Router) {
			r.Get("/", h.listTasks)
			r.Post("/", h.createTask)
			r.Get("/{taskID}", h.getTask)
			r.Patch("/{taskID}", h.updateTask)
			r.Delete("/{taskID}", h.deleteTask)
		})
	})

	return router
}
