package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public read surface, the rate-limited contact
// intake, and the token-protected admin surface under /api.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware, contactLimiter *contactRateLimiter) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public reads
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/skills", handlers.skillHandler.listSkills())
		r.Get("/skills/categories", handlers.skillHandler.listCategories())
		r.Get("/skills/{skillID}", handlers.skillHandler.getSkill())
		r.Get("/certificates", handlers.certificateHandler.listCertificates())
		r.Get("/certificates/categories", handlers.certificateHandler.listCategories())
		r.Get("/certificates/{certificateID}", handlers.certificateHandler.getCertificate())

		// Contact intake, throttled per client address
		r.With(contactLimiter.limit).Post("/contact", handlers.contactHandler.submitContact())

		// Admin login is the one unauthenticated admin route
		r.Post("/admin/login", handlers.adminHandler.login())

		// Everything below requires a valid admin token
		r.Group(func(r chi.Router) {
			r.Use(auth.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
			r.Put("/projects/{projectID}/featured", handlers.projectHandler.toggleFeatured())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())
			r.Put("/skills/{skillID}/toggle", handlers.skillHandler.toggleActive())

			r.Post("/certificates", handlers.certificateHandler.createCertificate())
			r.Put("/certificates/{certificateID}", handlers.certificateHandler.updateCertificate())
			r.Delete("/certificates/{certificateID}", handlers.certificateHandler.deleteCertificate())
			r.Put("/certificates/{certificateID}/featured", handlers.certificateHandler.toggleFeatured())
			r.Put("/certificates/{certificateID}/verify", handlers.certificateHandler.toggleVerified())

			r.Get("/contact", handlers.contactHandler.listContacts())
			r.Put("/contact/{contactID}/status", handlers.contactHandler.updateStatus())

			r.Post("/admin/verify", handlers.adminHandler.verify())
			r.Get("/admin/dashboard", handlers.adminHandler.dashboard())
			r.Get("/admin/contacts", handlers.adminHandler.contacts())
			r.Put("/admin/contacts/{contactID}", handlers.contactHandler.updateStatus())
			r.Delete("/admin/contacts/{contactID}", handlers.adminHandler.deleteContact())
		})
	})
}
