package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"breate/backend/internal/auth"
	"breate/backend/internal/common"
	"breate/backend/internal/models/dtos"
)

// GetProfile handles GET /api/v1/profile/{username} (public).
func (h *Handlers) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		username := chi.URLParam(r, "username")

		profile, err := h.deps.Services.Profile.GetProfile(r.Context(), username)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Profile fetched", profile)
	}
}

// UpdateProfile handles PUT /api/v1/profile/{username} (owner only).
//
// @Summary      Update own profile
// @Description  Applies an allow-listed partial update; unknown fields are ignored.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      403  {object}  dtos.APIResponse
// @Router       /api/v1/profile/{username} [put]
func (h *Handlers) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		username := chi.URLParam(r, "username")
		caller := auth.CurrentUser(r.Context())

		var req dtos.ProfileUpdateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid profile payload", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Profile.UpdateProfile(r.Context(), username, caller, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Profile updated successfully", nil)
	}
}
