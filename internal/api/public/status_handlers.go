package public

import (
	"encoding/json"
	"net/http"
	"time"
)

// BuildMetadata holds build-time information injected via -ldflags.
type BuildMetadata struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// StatusHandlers provides health and readiness endpoint handlers.
type StatusHandlers struct {
	generator     Generator
	buildMetadata BuildMetadata
}

// NewStatusHandlers creates status handlers for the server entrypoint.
func NewStatusHandlers(generator Generator, meta BuildMetadata) *StatusHandlers {
	return &StatusHandlers{
		generator:     generator,
		buildMetadata: meta,
	}
}

type statusResponse struct {
	Status    string        `json:"status"`
	ModelID   string        `json:"model_id,omitempty"`
	Build     BuildMetadata `json:"build"`
	Timestamp time.Time     `json:"timestamp"`
}

// HandleHealthz is a basic liveness check.
func (s *StatusHandlers) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, statusResponse{
		Status:    "ok",
		Build:     s.buildMetadata,
		Timestamp: time.Now().UTC(),
	})
}

// HandleReadyz reports readiness. The service has no downstream connections
// to probe beyond the cold-start wiring itself, so readiness means the
// inference client exists.
func (s *StatusHandlers) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.generator == nil {
		writeStatus(w, http.StatusServiceUnavailable, statusResponse{
			Status:    "unavailable",
			Build:     s.buildMetadata,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	writeStatus(w, http.StatusOK, statusResponse{
		Status:    "ready",
		ModelID:   s.generator.ModelID(),
		Build:     s.buildMetadata,
		Timestamp: time.Now().UTC(),
	})
}

func writeStatus(w http.ResponseWriter, statusCode int, body statusResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
