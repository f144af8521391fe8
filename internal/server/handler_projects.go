package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/me/folio/pkg/model"
)

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

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	opts := parseListOptions(r)
	if r.URL.Query().Get("featured") == "true" {
		opts.FeaturedOnly = true
	}

	projects, total, err := s.store.ListProjects(r.Context(), opts)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	respondList(w, reqID, projects, &model.Pagination{
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+opts.Limit < total,
	})
}

// handleGetProject resolves by ID first, then by slug, so both
// /projects/proj_xxx and /projects/my-project work.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	proj, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	if proj == nil {
		proj, err = s.store.GetProjectBySlug(r.Context(), id)
		if err != nil {
			respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
			return
		}
	}
	if proj == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("project", id))
		return
	}
	respondOK(w, reqID, proj)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var proj model.Project
	if err := json.NewDecoder(r.Body).Decode(&proj); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}
	if proj.Title == "" {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("missing required field",
				model.FieldError{Field: "title", Message: "title is required"}))
		return
	}
	if proj.Slug == "" {
		proj.Slug = slugify(proj.Title)
	}

	now := time.Now().UTC()
	proj.ID = "proj_" + uuid.New().String()
	proj.CreatedAt = now
	proj.UpdatedAt = now

	if err := s.store.CreateProject(r.Context(), &proj); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			respondError(w, reqID, http.StatusConflict, model.NewConflictError(err.Error()))
			return
		}
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	s.logger.Info("project created", "id", proj.ID, "slug", proj.Slug)
	respondCreated(w, reqID, &proj)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	if existing == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("project", id))
		return
	}

	var proj model.Project
	if err := json.NewDecoder(r.Body).Decode(&proj); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}

	proj.ID = existing.ID
	proj.CreatedAt = existing.CreatedAt
	proj.UpdatedAt = time.Now().UTC()
	if proj.Slug == "" {
		proj.Slug = existing.Slug
	}

	if err := s.store.UpdateProject(r.Context(), &proj); err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	respondOK(w, reqID, &proj)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	if existing == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("project", id))
		return
	}

	if err := s.store.DeleteProject(r.Context(), id); err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	s.logger.Info("project deleted", "id", id)
	respondOK(w, reqID, map[string]any{"deleted": true})
}
