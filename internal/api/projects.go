package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"breate/backend/internal/auth"
	"breate/backend/internal/common"
	"breate/backend/internal/models/dtos"
)

// ListProjects handles GET /api/v1/projects (public feed).
func (h *Handlers) ListProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		projects, err := h.deps.Services.Project.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Projects fetched", projects)
	}
}

// CreateProject handles POST /api/v1/projects (auth).
//
// @Summary      Post a new project
// @Description  The caller becomes the project's poster; status starts open.
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.ProjectCreateReq  true  "Project payload"
// @Success      201  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/projects [post]
func (h *Handlers) CreateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		caller := auth.CurrentUser(r.Context())

		var req dtos.ProjectCreateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid project payload", http.StatusBadRequest)
			return
		}

		project, err := h.deps.Services.Project.Create(r.Context(), caller, &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Project created", project, http.StatusCreated)
	}
}

// GetProject handles GET /api/v1/projects/{id} (public).
func (h *Handlers) GetProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := projectID(w, r, initTime)
		if !ok {
			return
		}

		project, err := h.deps.Services.Project.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Project fetched", project)
	}
}

// UpdateProjectStatus handles PATCH /api/v1/projects/{id}/status (owner only).
//
// @Summary      Advance a project's lifecycle status
// @Description  Only open->in_progress and in_progress->completed are legal.
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      403  {object}  dtos.APIResponse
// @Router       /api/v1/projects/{id}/status [patch]
func (h *Handlers) UpdateProjectStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		caller := auth.CurrentUser(r.Context())

		id, ok := projectID(w, r, initTime)
		if !ok {
			return
		}

		var req dtos.ProjectStatusUpdateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid status payload", http.StatusBadRequest)
			return
		}

		project, err := h.deps.Services.Project.UpdateStatus(r.Context(), caller, id, req.Status)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Project status updated", project)
	}
}

// DeleteProject handles DELETE /api/v1/projects/{id} (owner only, open only).
func (h *Handlers) DeleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		caller := auth.CurrentUser(r.Context())

		id, ok := projectID(w, r, initTime)
		if !ok {
			return
		}

		if err := h.deps.Services.Project.Delete(r.Context(), caller, id); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Project deleted successfully", nil)
	}
}

func projectID(w http.ResponseWriter, r *http.Request, initTime time.Time) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		common.RespondError(w, initTime, nil, "Invalid project id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}
