package api

import (
	"net/http"
	"time"

	"breate/backend/internal/common"
)

// ListArchetypes handles GET /api/v1/archetypes (public reference data).
func (h *Handlers) ListArchetypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		archetypes, err := h.deps.Services.Reference.ListArchetypes(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Archetypes fetched", archetypes)
	}
}

// ListTiers handles GET /api/v1/tiers (public reference data).
func (h *Handlers) ListTiers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		tiers, err := h.deps.Services.Reference.ListTiers(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Tiers fetched", tiers)
	}
}
