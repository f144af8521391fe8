package server

import (
	"errors"
	"net/http"

	"github.com/me/folio/internal/upload"
	"github.com/me/folio/pkg/model"
)

// handleUpload stores a site asset and returns its public URL.
// POST /api/v1/uploads, multipart form with a "file" field.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	if s.uploader == nil {
		respondError(w, reqID, http.StatusServiceUnavailable, &model.APIError{
			Code:    model.ErrInternal,
			Message: "uploads are not configured",
		})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxAssetSize)
	if err := r.ParseMultipartForm(upload.MaxAssetSize); err != nil {
		respondError(w, reqID, http.StatusRequestEntityTooLarge, &model.APIError{
			Code:    model.ErrValidation,
			Message: "file too large or malformed form",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("missing required field",
				model.FieldError{Field: "file", Message: "file field is required"}))
		return
	}
	defer file.Close()

	url, err := s.uploader.Put(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	switch {
	case errors.Is(err, upload.ErrUnsupportedType):
		respondError(w, reqID, http.StatusUnsupportedMediaType, &model.APIError{
			Code:    model.ErrValidation,
			Message: "unsupported content type",
		})
		return
	case errors.Is(err, upload.ErrTooLarge):
		respondError(w, reqID, http.StatusRequestEntityTooLarge, &model.APIError{
			Code:    model.ErrValidation,
			Message: "file too large",
		})
		return
	case err != nil:
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	s.logger.Info("asset uploaded", "filename", header.Filename, "url", url)
	respondCreated(w, reqID, map[string]any{"url": url})
}
