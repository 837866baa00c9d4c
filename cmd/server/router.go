package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/kelist/kelist-api/internal/api/middleware"
)

// setupRouter configures the route tree. Auth endpoints and the health
// check are public; everything else requires a valid access token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", app.authHandler.Register)
		r.Post("/auth/login", app.authHandler.Login)
		r.Post("/auth/refresh", app.authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", app.userHandler.List)
				r.Post("/", app.userHandler.Create)

				r.Route("/{userID}", func(r chi.Router) {
					r.Get("/", app.userHandler.Get)
					r.Put("/", app.userHandler.Update)
					r.Delete("/", app.userHandler.Delete)

					r.Route("/task-lists", func(r chi.Router) {
						r.Get("/", app.taskListHandler.List)
						r.Post("/", app.taskListHandler.Create)

						r.Route("/{listID}", func(r chi.Router) {
							r.Put("/", app.taskListHandler.Update)
							r.Delete("/", app.taskListHandler.Delete)

							r.Route("/items", func(r chi.Router) {
								r.Get("/", app.taskItemHandler.List)
								r.Post("/", app.taskItemHandler.Create)
								r.Put("/{itemID}", app.taskItemHandler.Update)
								r.Delete("/{itemID}", app.taskItemHandler.Delete)
							})
						})
					})
				})
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
