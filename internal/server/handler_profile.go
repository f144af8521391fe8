package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/me/folio/pkg/model"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	profile, err := s.store.GetProfile(r.Context())
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}
	if profile == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("profile", "1"))
		return
	}
	respondOK(w, reqID, profile)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var profile model.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}
	if profile.Name == "" {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("missing required field",
				model.FieldError{Field: "name", Message: "name is required"}))
		return
	}

	profile.UpdatedAt = time.Now().UTC()
	if err := s.store.SaveProfile(r.Context(), &profile); err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	s.logger.Info("profile saved", "name", profile.Name)
	respondOK(w, reqID, profile)
}
