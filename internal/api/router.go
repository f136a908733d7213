// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moodifyme/moodify/internal/auth"
	"github.com/moodifyme/moodify/internal/config"
	"github.com/moodifyme/moodify/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so both styles compose on one router.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router assembles the HTTP routing tree.
type Router struct {
	handler   *Handler
	chiMw     *ChiMiddleware
	validator auth.TokenValidator
}

// NewRouter builds a router over the endpoint handlers.
func NewRouter(handler *Handler, cfg config.SecurityConfig, validator auth.TokenValidator) *Router {
	return &Router{
		handler:   handler,
		chiMw:     NewChiMiddleware(cfg),
		validator: validator,
	}
}

// Setup configures all routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMw.CORS())

	requireAuth := auth.RequireAuth(router.validator, func(w http.ResponseWriter, _ *http.Request, status int, message string) {
		respondError(w, status, ErrCodeAuthentication, message)
	})

	// Health, permissively rate limited for monitoring tools.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMw.RateLimit(RateLimitHealth))
		r.Use(SecurityHeaders())
		r.Get("/", router.handler.Health)
	})

	// Account endpoints, strictly rate limited against brute force.
	r.Group(func(r chi.Router) {
		r.Use(SecurityHeaders())
		r.With(router.chiMw.RateLimit(RateLimitAuth)).Post("/api/v1/register", router.handler.Register)
		r.With(router.chiMw.RateLimit(RateLimitLogin)).Post("/api/v1/login", router.handler.Login)
	})

	// Recommendation endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMw.RateLimit(RateLimitAPI))
		r.Use(SecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/text_emotion", router.handler.TextEmotion)
		r.Post("/music_recommendation", router.handler.MusicRecommendation)
		r.Post("/recommendations", router.handler.Recommendations)
		r.Get("/test_tmdb_api", router.handler.TestTMDB)

		// Authenticated endpoints.
		r.Post("/facial_emotion", requireAuth(router.handler.FacialEmotion))
		r.Get("/history", requireAuth(router.handler.History))
	})

	// Prometheus scrape endpoint, outside the API envelope.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
