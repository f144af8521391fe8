package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/me/folio/pkg/model"
)

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	opts := parseListOptions(r)
	clients, total, err := s.store.ListClients(r.Context(), opts)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	respondList(w, reqID, clients, &model.Pagination{
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+opts.Limit < total,
	})
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var cl model.Client
	if err := json.NewDecoder(r.Body).Decode(&cl); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}
	if cl.Name == "" || cl.Quote == "" {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("missing required field",
				model.FieldError{Field: "name", Message: "name and quote are required"}))
		return
	}

	cl.ID = "cl_" + uuid.New().String()
	cl.CreatedAt = time.Now().UTC()

	if err := s.store.CreateClient(r.Context(), &cl); err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	s.logger.Info("client created", "id", cl.ID, "name", cl.Name)
	respondCreated(w, reqID, &cl)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetClient(r.Context(), id)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	if existing == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("client", id))
		return
	}

	var cl model.Client
	if err := json.NewDecoder(r.Body).Decode(&cl); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}

	cl.ID = existing.ID
	cl.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateClient(r.Context(), &cl); err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	respondOK(w, reqID, &cl)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteClient(r.Context(), id); err != nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("client", id))
		return
	}

	s.logger.Info("client deleted", "id", id)
	respondOK(w, reqID, map[string]any{"deleted": true})
}
