// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router. Middleware order, outermost first:
// trace id, real ip, instrumentation, access log, recoverer, CORS, trusted
// host. Authentication is applied per route group.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(middleware.RealIP)
	router.Use(h.withInstrumentation)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if len(h.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}))
	}
	router.Use(h.withTrustedHost)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)
		r.Get("/metrics", h.metrics.Handler().ServeHTTP)
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/performance-test", h.performanceTest)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.currentUser)
		r.Get("/api/data", h.items)
	})

	return router
}
