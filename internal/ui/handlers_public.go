package ui

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/me/folio/pkg/model"
)

// HandleHome renders the landing page: profile, featured projects,
// testimonials, and the latest posts.
func (ui *UI) HandleHome(w http.ResponseWriter, r *http.Request) {
	profile, err := ui.store.GetProfile(r.Context())
	if err != nil {
		ui.renderError(w, r, "Failed to load profile", err)
		return
	}

	featured, _, _ := ui.store.ListProjects(r.Context(), model.ListOptions{Limit: 6, FeaturedOnly: true})
	clients, _, _ := ui.store.ListClients(r.Context(), model.ListOptions{Limit: 6})
	posts, _, _ := ui.store.ListPosts(r.Context(), model.ListOptions{Limit: 3, PublishedOnly: true})

	data := ui.pageData(r, ui.site.Title)
	data["Profile"] = profile
	data["Featured"] = featured
	data["Clients"] = clients
	data["Posts"] = posts
	ui.render(w, "home", data)
}

// HandleProjectList renders the full portfolio grid.
func (ui *UI) HandleProjectList(w http.ResponseWriter, r *http.Request) {
	opts := model.ListOptions{Limit: 50}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		opts.Tag = tag
	}

	projects, total, err := ui.store.ListProjects(r.Context(), opts)
	if err != nil {
		ui.renderError(w, r, "Failed to load projects", err)
		return
	}

	data := ui.pageData(r, "Projects - "+ui.site.Title)
	data["Projects"] = projects
	data["Total"] = total
	data["Tag"] = opts.Tag
	ui.render(w, "projects/list", data)
}

// HandleProjectDetail renders a single project page.
func (ui *UI) HandleProjectDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	proj, err := ui.store.GetProjectBySlug(r.Context(), slug)
	if err != nil {
		ui.renderError(w, r, "Failed to load project", err)
		return
	}
	if proj == nil {
		ui.renderNotFound(w, r, "Project not found")
		return
	}

	data := ui.pageData(r, proj.Title+" - "+ui.site.Title)
	data["Project"] = proj
	ui.render(w, "projects/detail", data)
}

// HandleBlogList renders published posts, newest first.
func (ui *UI) HandleBlogList(w http.ResponseWriter, r *http.Request) {
	opts := model.ListOptions{Limit: 20, PublishedOnly: true}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		opts.Tag = tag
	}

	posts, total, err := ui.store.ListPosts(r.Context(), opts)
	if err != nil {
		ui.renderError(w, r, "Failed to load posts", err)
		return
	}

	data := ui.pageData(r, "Blog - "+ui.site.Title)
	data["Posts"] = posts
	data["Total"] = total
	data["Tag"] = opts.Tag
	ui.render(w, "blog/list", data)
}

// HandleBlogDetail renders a single published post. Drafts 404 for
// everyone except a signed-in admin.
func (ui *UI) HandleBlogDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := ui.store.GetPostBySlug(r.Context(), slug)
	if err != nil {
		ui.renderError(w, r, "Failed to load post", err)
		return
	}
	if post == nil || (!post.Published && !ui.isAdmin(r)) {
		ui.renderNotFound(w, r, "Post not found")
		return
	}

	data := ui.pageData(r, post.Title+" - "+ui.site.Title)
	data["Post"] = post
	ui.render(w, "blog/detail", data)
}

// HandleContact renders the contact form.
func (ui *UI) HandleContact(w http.ResponseWriter, r *http.Request) {
	data := ui.pageData(r, "Contact - "+ui.site.Title)
	data["Sent"] = r.URL.Query().Get("sent") == "1"
	data["Error"] = r.URL.Query().Get("error")
	ui.render(w, "contact", data)
}

// HandleContactPost stores a contact-form submission.
func (ui *UI) HandleContactPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/contact?error=Invalid+request", http.StatusSeeOther)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	body := strings.TrimSpace(r.FormValue("message"))

	if name == "" || body == "" || !strings.Contains(email, "@") {
		http.Redirect(w, r, "/contact?error=All+fields+are+required", http.StatusSeeOther)
		return
	}

	msg := &model.ContactMessage{
		ID:        "msg_" + uuid.New().String(),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(r.FormValue("subject")),
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := ui.store.CreateMessage(r.Context(), msg); err != nil {
		ui.renderError(w, r, "Failed to save message", err)
		return
	}

	ui.logger.Info("contact message received", "id", msg.ID)
	http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
}
