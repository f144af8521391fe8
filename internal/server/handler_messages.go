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

// handleCreateMessage accepts a public contact-form submission.
// POST /api/v1/messages
func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}

	var fields []model.FieldError
	if req.Name == "" {
		fields = append(fields, model.FieldError{Field: "name", Message: "name is required"})
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		fields = append(fields, model.FieldError{Field: "email", Message: "a valid email is required"})
	}
	if req.Body == "" {
		fields = append(fields, model.FieldError{Field: "body", Message: "message body is required"})
	}
	if len(fields) > 0 {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid contact submission", fields...))
		return
	}

	msg := &model.ContactMessage{
		ID:        "msg_" + uuid.New().String(),
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateMessage(r.Context(), msg); err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	s.logger.Info("contact message received", "id", msg.ID)
	respondCreated(w, reqID, map[string]any{"id": msg.ID, "received": true})
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	opts := parseListOptions(r)
	if r.URL.Query().Get("unread") == "true" {
		opts.UnreadOnly = true
	}

	messages, total, err := s.store.ListMessages(r.Context(), opts)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	respondList(w, reqID, messages, &model.Pagination{
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+opts.Limit < total,
	})
}

func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	msg, err := s.store.GetMessage(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	if msg == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("message", id))
		return
	}
	respondOK(w, reqID, msg)
}

func (s *Server) handleMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	read := r.URL.Query().Get("read") != "false"
	if err := s.store.MarkMessageRead(r.Context(), id, read); err != nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("message", id))
		return
	}
	respondOK(w, reqID, map[string]any{"id": id, "read": read})
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteMessage(r.Context(), id); err != nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("message", id))
		return
	}

	s.logger.Info("message deleted", "id", id)
	respondOK(w, reqID, map[string]any{"deleted": true})
}
