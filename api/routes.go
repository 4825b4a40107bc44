package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vijayleo46/portfolio-backend/models"
)

// resourcePaths is the discovery index served at the root, mirroring the
// plural-noun prefix of each resource group.
var resourcePaths = map[string]string{
	"projects":   "/projects/",
	"experience": "/experience/",
	"education":  "/education/",
	"skills":     "/skills/",
	"contact":    "/contact/",
}

// setupFrontendRoutes sets up all routes consumed by the site frontend
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		mountResource(r, "/projects", handlers.projects)
		mountResource(r, "/experience", handlers.experience)
		mountResource(r, "/education", handlers.education)
		mountResource(r, "/skills", handlers.skills)
		mountResource(r, "/contact", handlers.contact)

		r.Post("/chatbot", handlers.chatbot.ask())
		r.Post("/contact-message", handlers.contactMessage.create())

		r.Get("/", rootIndex(handlers))
	})
}

// mountResource registers the six CRUD routes for one resource group
func mountResource[T models.Entity](r chi.Router, path string, h resourceHandler[T]) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.list())
		r.Post("/", h.create())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get())
			r.Put("/", h.update())
			r.Patch("/", h.patch())
			r.Delete("/", h.delete())
		})
	})
}

// rootIndex lists the available resource paths, informational only
func rootIndex(handlers *routeHandlers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handlers.projects.responder.WriteJSON(w, resourcePaths)
	}
}
