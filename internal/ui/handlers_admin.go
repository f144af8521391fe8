package ui

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/me/folio/pkg/model"
)

// HandleDashboard renders the back-office landing page with content counts.
func (ui *UI) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	_, projectCount, _ := ui.store.ListProjects(r.Context(), model.ListOptions{Limit: 1})
	_, postCount, _ := ui.store.ListPosts(r.Context(), model.ListOptions{Limit: 1})
	_, clientCount, _ := ui.store.ListClients(r.Context(), model.ListOptions{Limit: 1})
	messages, unreadCount, _ := ui.store.ListMessages(r.Context(), model.ListOptions{Limit: 5, UnreadOnly: true})

	data := ui.pageData(r, "Dashboard - "+ui.site.Title)
	data["ProjectCount"] = projectCount
	data["PostCount"] = postCount
	data["ClientCount"] = clientCount
	data["UnreadCount"] = unreadCount
	data["RecentMessages"] = messages
	ui.render(w, "admin/dashboard", data)
}

// --- Profile ---

func (ui *UI) HandleAdminProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := ui.store.GetProfile(r.Context())
	if err != nil {
		ui.renderError(w, r, "Failed to load profile", err)
		return
	}
	if profile == nil {
		profile = &model.Profile{}
	}

	data := ui.pageData(r, "Profile - "+ui.site.Title)
	data["Profile"] = profile
	data["Saved"] = r.URL.Query().Get("saved") == "1"
	ui.render(w, "admin/profile", data)
}

func (ui *UI) HandleAdminProfilePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.renderError(w, r, "Invalid form", err)
		return
	}

	profile := &model.Profile{
		Name:      strings.TrimSpace(r.FormValue("name")),
		Headline:  strings.TrimSpace(r.FormValue("headline")),
		Bio:       r.FormValue("bio"),
		AvatarURL: strings.TrimSpace(r.FormValue("avatar_url")),
		Skills:    parseSkills(r.FormValue("skills")),
		Socials:   parseSocials(r.FormValue("socials")),
		UpdatedAt: time.Now().UTC(),
	}
	if profile.Name == "" {
		ui.renderError(w, r, "Name is required", nil)
		return
	}

	// Services survive a save that doesn't edit them.
	if existing, err := ui.store.GetProfile(r.Context()); err == nil && existing != nil {
		profile.Services = existing.Services
	}

	if err := ui.store.SaveProfile(r.Context(), profile); err != nil {
		ui.renderError(w, r, "Failed to save profile", err)
		return
	}
	http.Redirect(w, r, "/admin/profile?saved=1", http.StatusSeeOther)
}

// parseSkills reads one "Name:Level" pair per line.
func parseSkills(s string) []model.Skill {
	var skills []model.Skill
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, levelStr, _ := strings.Cut(line, ":")
		level, _ := strconv.Atoi(strings.TrimSpace(levelStr))
		if level < 0 || level > 100 {
			level = 0
		}
		skills = append(skills, model.Skill{Name: strings.TrimSpace(name), Level: level})
	}
	return skills
}

// parseSocials reads one "Label|URL" pair per line.
func parseSocials(s string) []model.SocialLink {
	var links []model.SocialLink
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, url, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		links = append(links, model.SocialLink{Label: strings.TrimSpace(label), URL: strings.TrimSpace(url)})
	}
	return links
}

// --- Projects ---

func (ui *UI) HandleAdminProjects(w http.ResponseWriter, r *http.Request) {
	projects, total, err := ui.store.ListProjects(r.Context(), model.ListOptions{Limit: 100})
	if err != nil {
		ui.renderError(w, r, "Failed to load projects", err)
		return
	}

	data := ui.pageData(r, "Projects - "+ui.site.Title)
	data["Projects"] = projects
	data["Total"] = total
	ui.render(w, "admin/projects", data)
}

func (ui *UI) HandleAdminProjectForm(w http.ResponseWriter, r *http.Request) {
	proj := &model.Project{}
	if id := chi.URLParam(r, "id"); id != "" {
		existing, err := ui.store.GetProject(r.Context(), id)
		if err != nil {
			ui.renderError(w, r, "Failed to load project", err)
			return
		}
		if existing == nil {
			ui.renderNotFound(w, r, "Project not found")
			return
		}
		proj = existing
	}

	data := ui.pageData(r, "Edit project - "+ui.site.Title)
	data["Project"] = proj
	data["Tags"] = strings.Join(proj.Tags, ", ")
	ui.render(w, "admin/project_form", data)
}

func (ui *UI) HandleAdminProjectSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.renderError(w, r, "Invalid form", err)
		return
	}

	now := time.Now().UTC()
	proj := &model.Project{
		Title:     strings.TrimSpace(r.FormValue("title")),
		Slug:      strings.TrimSpace(r.FormValue("slug")),
		Summary:   strings.TrimSpace(r.FormValue("summary")),
		Body:      r.FormValue("body"),
		ImageURL:  strings.TrimSpace(r.FormValue("image_url")),
		Tags:      splitTags(r.FormValue("tags")),
		RepoURL:   strings.TrimSpace(r.FormValue("repo_url")),
		LiveURL:   strings.TrimSpace(r.FormValue("live_url")),
		Featured:  r.FormValue("featured") == "on",
		UpdatedAt: now,
	}
	proj.SortOrder, _ = strconv.Atoi(r.FormValue("sort_order"))
	if proj.Title == "" {
		ui.renderError(w, r, "Title is required", nil)
		return
	}
	if proj.Slug == "" {
		proj.Slug = slugify(proj.Title)
	}

	if id := chi.URLParam(r, "id"); id != "" {
		existing, err := ui.store.GetProject(r.Context(), id)
		if err != nil || existing == nil {
			ui.renderNotFound(w, r, "Project not found")
			return
		}
		proj.ID = existing.ID
		proj.CreatedAt = existing.CreatedAt
		if err := ui.store.UpdateProject(r.Context(), proj); err != nil {
			ui.renderError(w, r, "Failed to update project", err)
			return
		}
	} else {
		proj.ID = "proj_" + uuid.New().String()
		proj.CreatedAt = now
		if err := ui.store.CreateProject(r.Context(), proj); err != nil {
			ui.renderError(w, r, "Failed to create project", err)
			return
		}
	}

	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

func (ui *UI) HandleAdminProjectDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := ui.store.DeleteProject(r.Context(), id); err != nil {
		ui.renderError(w, r, "Failed to delete project", err)
		return
	}
	ui.logger.Info("project deleted", "id", id)
	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// splitTags parses a comma-separated tag list.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// slugify turns a title into a URL-safe slug.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, c := range strings.ToLower(s) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// --- Clients ---

func (ui *UI) HandleAdminClients(w http.ResponseWriter, r *http.Request) {
	clients, total, err := ui.store.ListClients(r.Context(), model.ListOptions{Limit: 100})
	if err != nil {
		ui.renderError(w, r, "Failed to load clients", err)
		return
	}

	data := ui.pageData(r, "Clients - "+ui.site.Title)
	data["Clients"] = clients
	data["Total"] = total
	ui.render(w, "admin/clients", data)
}

func (ui *UI) HandleAdminClientForm(w http.ResponseWriter, r *http.Request) {
	cl := &model.Client{}
	if id := chi.URLParam(r, "id"); id != "" {
		existing, err := ui.store.GetClient(r.Context(), id)
		if err != nil {
			ui.renderError(w, r, "Failed to load client", err)
			return
		}
		if existing == nil {
			ui.renderNotFound(w, r, "Client not found")
			return
		}
		cl = existing
	}

	data := ui.pageData(r, "Edit client - "+ui.site.Title)
	data["Client"] = cl
	ui.render(w, "admin/client_form", data)
}

func (ui *UI) HandleAdminClientSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.renderError(w, r, "Invalid form", err)
		return
	}

	cl := &model.Client{
		Name:      strings.TrimSpace(r.FormValue("name")),
		Company:   strings.TrimSpace(r.FormValue("company")),
		Quote:     strings.TrimSpace(r.FormValue("quote")),
		AvatarURL: strings.TrimSpace(r.FormValue("avatar_url")),
		Website:   strings.TrimSpace(r.FormValue("website")),
	}
	cl.SortOrder, _ = strconv.Atoi(r.FormValue("sort_order"))
	if cl.Name == "" || cl.Quote == "" {
		ui.renderError(w, r, "Name and quote are required", nil)
		return
	}

	if id := chi.URLParam(r, "id"); id != "" {
		existing, err := ui.store.GetClient(r.Context(), id)
		if err != nil || existing == nil {
			ui.renderNotFound(w, r, "Client not found")
			return
		}
		cl.ID = existing.ID
		cl.CreatedAt = existing.CreatedAt
		if err := ui.store.UpdateClient(r.Context(), cl); err != nil {
			ui.renderError(w, r, "Failed to update client", err)
			return
		}
	} else {
		cl.ID = "cl_" + uuid.New().String()
		cl.CreatedAt = time.Now().UTC()
		if err := ui.store.CreateClient(r.Context(), cl); err != nil {
			ui.renderError(w, r, "Failed to create client", err)
			return
		}
	}

	http.Redirect(w, r, "/admin/clients", http.StatusSeeOther)
}

func (ui *UI) HandleAdminClientDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := ui.store.DeleteClient(r.Context(), id); err != nil {
		ui.renderError(w, r, "Failed to delete client", err)
		return
	}
	http.Redirect(w, r, "/admin/clients", http.StatusSeeOther)
}

// --- Posts ---

func (ui *UI) HandleAdminPosts(w http.ResponseWriter, r *http.Request) {
	posts, total, err := ui.store.ListPosts(r.Context(), model.ListOptions{Limit: 100})
	if err != nil {
		ui.renderError(w, r, "Failed to load posts", err)
		return
	}

	data := ui.pageData(r, "Posts - "+ui.site.Title)
	data["Posts"] = posts
	data["Total"] = total
	ui.render(w, "admin/posts", data)
}

func (ui *UI) HandleAdminPostForm(w http.ResponseWriter, r *http.Request) {
	post := &model.Post{}
	if id := chi.URLParam(r, "id"); id != "" {
		existing, err := ui.store.GetPost(r.Context(), id)
		if err != nil {
			ui.renderError(w, r, "Failed to load post", err)
			return
		}
		if existing == nil {
			ui.renderNotFound(w, r, "Post not found")
			return
		}
		post = existing
	}

	data := ui.pageData(r, "Edit post - "+ui.site.Title)
	data["Post"] = post
	data["Tags"] = strings.Join(post.Tags, ", ")
	ui.render(w, "admin/post_form", data)
}

func (ui *UI) HandleAdminPostSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.renderError(w, r, "Invalid form", err)
		return
	}

	now := time.Now().UTC()
	post := &model.Post{
		Title:     strings.TrimSpace(r.FormValue("title")),
		Slug:      strings.TrimSpace(r.FormValue("slug")),
		Excerpt:   strings.TrimSpace(r.FormValue("excerpt")),
		Body:      r.FormValue("body"),
		CoverURL:  strings.TrimSpace(r.FormValue("cover_url")),
		Tags:      splitTags(r.FormValue("tags")),
		Published: r.FormValue("published") == "on",
		UpdatedAt: now,
	}
	if post.Title == "" || post.Body == "" {
		ui.renderError(w, r, "Title and body are required", nil)
		return
	}
	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}

	if id := chi.URLParam(r, "id"); id != "" {
		existing, err := ui.store.GetPost(r.Context(), id)
		if err != nil || existing == nil {
			ui.renderNotFound(w, r, "Post not found")
			return
		}
		post.ID = existing.ID
		post.CreatedAt = existing.CreatedAt
		// Keep the original publication time across edits.
		if post.Published {
			if existing.PublishedAt != nil {
				post.PublishedAt = existing.PublishedAt
			} else {
				post.PublishedAt = &now
			}
		}
		if err := ui.store.UpdatePost(r.Context(), post); err != nil {
			ui.renderError(w, r, "Failed to update post", err)
			return
		}
	} else {
		post.ID = "post_" + uuid.New().String()
		post.CreatedAt = now
		if post.Published {
			post.PublishedAt = &now
		}
		if err := ui.store.CreatePost(r.Context(), post); err != nil {
			ui.renderError(w, r, "Failed to create post", err)
			return
		}
	}

	http.Redirect(w, r, "/admin/posts", http.StatusSeeOther)
}

func (ui *UI) HandleAdminPostDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := ui.store.DeletePost(r.Context(), id); err != nil {
		ui.renderError(w, r, "Failed to delete post", err)
		return
	}
	http.Redirect(w, r, "/admin/posts", http.StatusSeeOther)
}

// --- Messages ---

func (ui *UI) HandleAdminMessages(w http.ResponseWriter, r *http.Request) {
	opts := model.ListOptions{Limit: 100}
	if r.URL.Query().Get("unread") == "1" {
		opts.UnreadOnly = true
	}

	messages, total, err := ui.store.ListMessages(r.Context(), opts)
	if err != nil {
		ui.renderError(w, r, "Failed to load messages", err)
		return
	}

	data := ui.pageData(r, "Messages - "+ui.site.Title)
	data["Messages"] = messages
	data["Total"] = total
	data["UnreadOnly"] = opts.UnreadOnly
	ui.render(w, "admin/messages", data)
}

func (ui *UI) HandleAdminMessageDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	msg, err := ui.store.GetMessage(r.Context(), id)
	if err != nil {
		ui.renderError(w, r, "Failed to load message", err)
		return
	}
	if msg == nil {
		ui.renderNotFound(w, r, "Message not found")
		return
	}

	// Opening a message marks it read.
	if !msg.Read {
		if err := ui.store.MarkMessageRead(r.Context(), id, true); err == nil {
			msg.Read = true
		}
	}

	data := ui.pageData(r, "Message - "+ui.site.Title)
	data["Message"] = msg
	ui.render(w, "admin/message_detail", data)
}

func (ui *UI) HandleAdminMessageRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	read := r.FormValue("read") != "0"
	if err := ui.store.MarkMessageRead(r.Context(), id, read); err != nil {
		ui.renderError(w, r, "Failed to update message", err)
		return
	}
	http.Redirect(w, r, "/admin/messages", http.StatusSeeOther)
}

func (ui *UI) HandleAdminMessageDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := ui.store.DeleteMessage(r.Context(), id); err != nil {
		ui.renderError(w, r, "Failed to delete message", err)
		return
	}
	http.Redirect(w, r, "/admin/messages", http.StatusSeeOther)
}
