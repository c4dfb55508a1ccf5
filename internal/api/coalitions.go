package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"breate/backend/internal/common"
)

// ListCoalitions handles GET /api/v1/coalitions (public).
//
// @Summary      List coalitions
// @Description  Optional search over name/focus/location and region filter.
// @Tags         Coalitions
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Router       /api/v1/coalitions [get]
func (h *Handlers) ListCoalitions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		coalitions, err := h.deps.Services.Coalition.List(r.Context(), q.Get("search"), q.Get("region"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Coalitions fetched", coalitions)
	}
}

// GetCoalition handles GET /api/v1/coalitions/{id} (public).
func (h *Handlers) GetCoalition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid coalition id", http.StatusBadRequest)
			return
		}

		coalition, err := h.deps.Services.Coalition.Get(r.Context(), uint(id))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Coalition fetched", coalition)
	}
}
