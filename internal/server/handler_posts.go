package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/me/folio/internal/auth"
	"github.com/me/folio/pkg/model"
)

// isAdminRequest reports whether the request carries an admin session.
// The gate excludes /api from redirects but still lets handlers read
// the cookie directly for visibility decisions.
func (s *Server) isAdminRequest(r *http.Request) bool {
	if payload := auth.SessionFromContext(r.Context()); payload != nil {
		return payload.Role == string(model.RoleAdmin)
	}
	payload, err := s.cookies.ReadCurrent(r)
	return err == nil && payload != nil && payload.Role == string(model.RoleAdmin)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	opts := parseListOptions(r)
	// Drafts are visible only to the site owner.
	if !s.isAdminRequest(r) {
		opts.PublishedOnly = true
	}

	posts, total, err := s.store.ListPosts(r.Context(), opts)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	respondList(w, reqID, posts, &model.Pagination{
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+opts.Limit < total,
	})
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	slug := chi.URLParam(r, "slug")

	post, err := s.store.GetPostBySlug(r.Context(), slug)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	if post == nil {
		post, err = s.store.GetPost(r.Context(), slug)
		if err != nil {
			respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
			return
		}
	}
	if post == nil || (!post.Published && !s.isAdminRequest(r)) {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("post", slug))
		return
	}
	respondOK(w, reqID, post)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var post model.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}
	if post.Title == "" || post.Body == "" {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("missing required field",
				model.FieldError{Field: "title", Message: "title and body are required"}))
		return
	}
	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}

	now := time.Now().UTC()
	post.ID = "post_" + uuid.New().String()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Published && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	if err := s.store.CreatePost(r.Context(), &post); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			respondError(w, reqID, http.StatusConflict, model.NewConflictError(err.Error()))
			return
		}
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	s.logger.Info("post created", "id", post.ID, "slug", post.Slug, "published", post.Published)
	respondCreated(w, reqID, &post)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	if existing == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("post", id))
		return
	}

	var post model.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}

	post.ID = existing.ID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = time.Now().UTC()
	if post.Slug == "" {
		post.Slug = existing.Slug
	}
	// First publish stamps the publication time; unpublishing clears it.
	if post.Published && post.PublishedAt == nil {
		if existing.PublishedAt != nil {
			post.PublishedAt = existing.PublishedAt
		} else {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
	}
	if !post.Published {
		post.PublishedAt = nil
	}

	if err := s.store.UpdatePost(r.Context(), &post); err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	respondOK(w, reqID, &post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	if existing == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("post", id))
		return
	}

	if err := s.store.DeletePost(r.Context(), id); err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	s.logger.Info("post deleted", "id", id)
	respondOK(w, reqID, map[string]any{"deleted": true})
}
