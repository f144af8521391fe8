package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all HTML routes on the given router.
// Access control is enforced upstream by the route gate: /admin requires
// a session, /auth is for signed-out visitors, everything else is public.
func (ui *UI) RegisterRoutes(r chi.Router) {
	// Public site
	r.Get("/", ui.HandleHome)
	r.Get("/projects", ui.HandleProjectList)
	r.Get("/projects/{slug}", ui.HandleProjectDetail)
	r.Get("/blog", ui.HandleBlogList)
	r.Get("/blog/{slug}", ui.HandleBlogDetail)
	r.Get("/contact", ui.HandleContact)
	r.Post("/contact", ui.HandleContactPost)

	// Auth pages. Logout lives outside the auth-only prefix: the gate
	// redirects signed-in visitors away from /auth, and a signed-in
	// visitor is exactly who needs to log out.
	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", ui.HandleLoginPage)
		r.Post("/login", ui.HandleLoginPost)
	})
	r.Post("/logout", ui.HandleLogout)
	r.Get("/logout", ui.HandleLogout)

	// Admin back-office
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", ui.HandleDashboard)

		r.Get("/profile", ui.HandleAdminProfile)
		r.Post("/profile", ui.HandleAdminProfilePost)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", ui.HandleAdminProjects)
			r.Get("/new", ui.HandleAdminProjectForm)
			r.Post("/new", ui.HandleAdminProjectSave)
			r.Get("/{id}", ui.HandleAdminProjectForm)
			r.Post("/{id}", ui.HandleAdminProjectSave)
			r.Post("/{id}/delete", ui.HandleAdminProjectDelete)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", ui.HandleAdminClients)
			r.Get("/new", ui.HandleAdminClientForm)
			r.Post("/new", ui.HandleAdminClientSave)
			r.Get("/{id}", ui.HandleAdminClientForm)
			r.Post("/{id}", ui.HandleAdminClientSave)
			r.Post("/{id}/delete", ui.HandleAdminClientDelete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", ui.HandleAdminPosts)
			r.Get("/new", ui.HandleAdminPostForm)
			r.Post("/new", ui.HandleAdminPostSave)
			r.Get("/{id}", ui.HandleAdminPostForm)
			r.Post("/{id}", ui.HandleAdminPostSave)
			r.Post("/{id}/delete", ui.HandleAdminPostDelete)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", ui.HandleAdminMessages)
			r.Get("/{id}", ui.HandleAdminMessageDetail)
			r.Post("/{id}/read", ui.HandleAdminMessageRead)
			r.Post("/{id}/delete", ui.HandleAdminMessageDelete)
		})
	})
}

// StaticHandler returns an http.Handler that serves static files from the given directory.
func StaticHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.StripPrefix("/static/", fs)
}
