package api

import (
	"encoding/json"
	"net/http"
	"time"

	"breate/backend/internal/auth"
	"breate/backend/internal/common"
	"breate/backend/internal/models/dtos"
)

// CreateCollab handles POST /api/v1/collabcircle (auth).
//
// @Summary      Record a collaboration link
// @Description  One link per unordered username pair; caller's side starts confirmed.
// @Tags         CollabCircle
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.CollabCreateReq  true  "Collaboration payload"
// @Success      201  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/collabcircle [post]
func (h *Handlers) CreateCollab() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		caller := auth.CurrentUser(r.Context())

		var req dtos.CollabCreateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CollaboratorUsername == "" {
			common.RespondError(w, initTime, nil, "Invalid collaboration payload", http.StatusBadRequest)
			return
		}

		link, err := h.deps.Services.Collab.Create(r.Context(), caller, &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Collaboration recorded", link, http.StatusCreated)
	}
}

// MyCollabs handles GET /api/v1/collabcircle/me (auth).
func (h *Handlers) MyCollabs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		caller := auth.CurrentUser(r.Context())

		links, err := h.deps.Services.Collab.ListMine(r.Context(), caller)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Collaborations fetched", links)
	}
}
