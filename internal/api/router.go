package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"

	"github.com/ligafc/matchday/internal/api/handler"
	"github.com/ligafc/matchday/internal/api/middleware"
	"github.com/ligafc/matchday/internal/session"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Sessions     *session.Manager
	Cookies      *securecookie.SecureCookie
	CookieSecure bool
	CSRFKey      []byte // nil disables CSRF protection
	Views        handler.PageRenderer
	Clock        handler.Clock
	Version      string
	OpenAPISpec  []byte
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.Sessions, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	dashboardHandler := handler.NewDashboardHandler(deps.Views)
	teamHandler := handler.NewTeamHandler(deps.Views)
	challengeHandler := handler.NewChallengeHandler(deps.Views, deps.Clock)
	adminHandler := handler.NewAdminHandler(deps.Views)
	leagueHandler := handler.NewLeagueHandler()

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(deps.Sessions, deps.Cookies, deps.CookieSecure))
		if len(deps.CSRFKey) > 0 {
			r.Use(middleware.CSRF(deps.CSRFKey, deps.CookieSecure))
		}

		r.Get("/", dashboardHandler.ServeHTTP)

		r.Get("/teams", teamHandler.Form)
		r.Post("/teams", teamHandler.Register)

		r.Get("/challenges", challengeHandler.Form)
		r.Post("/challenges", challengeHandler.Submit)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/", adminHandler.Page)
			r.Post("/requests/{id}/accept", adminHandler.Accept)
			r.Post("/requests/{id}/reject", adminHandler.Reject)
			r.Post("/reset", adminHandler.Reset)
		})

		r.Get("/api/v1/league", leagueHandler.ServeHTTP)
	})

	return r
}
