package api

import (
	"net/http"
	"strconv"
	"time"

	"breate/backend/internal/common"
)

// DiscoverUsers handles GET /api/v1/discover/users (public).
//
// Optional query params: username (substring), archetype_id, tier_id.
func (h *Handlers) DiscoverUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		archetypeID, err := parseOptionalUint(q.Get("archetype_id"))
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid archetype_id", http.StatusBadRequest)
			return
		}
		tierID, err := parseOptionalUint(q.Get("tier_id"))
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid tier_id", http.StatusBadRequest)
			return
		}

		users, err := h.deps.Services.Discover.Users(r.Context(), q.Get("username"), archetypeID, tierID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Users fetched", users)
	}
}

// DiscoverProjects handles GET /api/v1/discover/projects (public).
//
// Returns open projects only. Optional query params: region, archetype,
// coalition (substring matches).
func (h *Handlers) DiscoverProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		projects, err := h.deps.Services.Discover.Projects(
			r.Context(), q.Get("region"), q.Get("archetype"), q.Get("coalition"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Projects fetched", projects)
	}
}

func parseOptionalUint(s string) (*uint, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, err
	}
	u := uint(v)
	return &u, nil
}
