package api

import (
	"net/http"
	"time"

	"breate/backend/internal/common"
	"breate/backend/internal/services"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}

// respondServiceError maps a service error kind to its HTTP status and
// writes the envelope.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	code := services.HTTPStatus(err)
	if code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	common.RespondError(w, initTime, err, "Request failed", code)
}
