package routes

import (
	"github.com/go-chi/chi/v5"

	"breate/backend/internal/api"
	"breate/backend/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers. Reads are
// public; every mutating route sits behind the bearer-token middleware.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, handlers *api.Handlers) {
	r.Route("/api/v1", func(v1 chi.Router) {

		// Signup and login, rate limited per client IP
		v1.Group(func(users chi.Router) {
			users.Use(middleware.RateLimitMiddleware)
			users.Post("/users/signup", handlers.Signup())
			users.Post("/users/login", handlers.Login())
		})

		// Public reads
		v1.Get("/profile/{username}", handlers.GetProfile())
		v1.Get("/discover/users", handlers.DiscoverUsers())
		v1.Get("/discover/projects", handlers.DiscoverProjects())
		v1.Get("/coalitions", handlers.ListCoalitions())
		v1.Get("/coalitions/{id}", handlers.GetCoalition())
		v1.Get("/projects", handlers.ListProjects())
		v1.Get("/projects/{id}", handlers.GetProject())
		v1.Get("/archetypes", handlers.ListArchetypes())
		v1.Get("/tiers", handlers.ListTiers())

		// Authenticated mutations
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Repo.User, deps.Cfg.SecretKey))

			authed.Put("/profile/{username}", handlers.UpdateProfile())
			authed.Post("/projects", handlers.CreateProject())
			authed.Patch("/projects/{id}/status", handlers.UpdateProjectStatus())
			authed.Delete("/projects/{id}", handlers.DeleteProject())
			authed.Post("/collabcircle", handlers.CreateCollab())
			authed.Get("/collabcircle/me", handlers.MyCollabs())
		})
	})
}
