package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/devhussain7/medium-api/internal/api"
	apiMiddleware "github.com/devhussain7/medium-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// The API serves a browser SPA on another origin.
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	authHandler := api.NewAuthHandler(app.userService)
	blogHandler := api.NewBlogHandler(app.postService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/v1", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/user/signup", authHandler.Signup)
		r.Post("/user/signin", authHandler.Signin)

		// Every route under the post-management path passes through the
		// auth gate.
		r.Route("/blog", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/", blogHandler.CreateBlog)
			r.Put("/", blogHandler.UpdateBlog)
			r.Get("/bulk", blogHandler.ListBlogs)
			r.Get("/{id}", blogHandler.GetBlog)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
