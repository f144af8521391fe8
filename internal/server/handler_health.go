package server

import (
	"net/http"
	"runtime"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Store     string `json:"store"`
	Uploads   string `json:"uploads"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	storeStatus := "ok"
	if _, err := s.store.GetProfile(r.Context()); err != nil {
		storeStatus = "unavailable"
	}
	uploads := "disabled"
	if s.uploader != nil {
		uploads = "enabled"
	}

	respondOK(w, reqID, healthResponse{
		Status:    "healthy",
		Version:   "0.1.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Store:     storeStatus,
		Uploads:   uploads,
	})
}

// handleDiscovery lists the API's top-level resources.
func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, map[string]any{
		"name":    s.site.Title,
		"version": "v1",
		"resources": []string{
			"/api/v1/health",
			"/api/v1/profile",
			"/api/v1/projects",
			"/api/v1/clients",
			"/api/v1/posts",
			"/api/v1/messages",
		},
	})
}
