package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authsvc "github.com/jcarlounavas/gcashtrack/internal/auth"
	"github.com/jcarlounavas/gcashtrack/internal/http/alias"
	"github.com/jcarlounavas/gcashtrack/internal/http/auth"
	"github.com/jcarlounavas/gcashtrack/internal/http/export"
	"github.com/jcarlounavas/gcashtrack/internal/http/statement"
	"github.com/jcarlounavas/gcashtrack/internal/http/upload"
)

// New assembles the API router. Everything except registration and login
// sits behind bearer-token auth.
func New(
	authSvc *authsvc.Service,
	authV1 *auth.Handler,
	uploadV1 *upload.Handler,
	statementsV1 *statement.Handler,
	exportV1 *export.Handler,
	aliasesV1 *alias.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware())

			r.Route("/statements", func(r chi.Router) {
				uploadV1.Routes(r)
				statementsV1.Routes(r)
				exportV1.Routes(r)
			})

			r.Route("/aliases", func(r chi.Router) {
				aliasesV1.Routes(r)
			})
		})
	})

	return router
}
