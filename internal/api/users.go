package api

import (
	"encoding/json"
	"net/http"
	"time"

	"breate/backend/internal/common"
	"breate/backend/internal/models/dtos"
)

// SignupHandler handles POST /api/v1/users/signup
//
// @Summary      Register a new user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.SignupReq  true  "Signup payload"
// @Success      201  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/users/signup [post]
func (h *Handlers) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SignupReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid signup payload", http.StatusBadRequest)
			return
		}

		user, err := h.deps.Services.User.Signup(r.Context(), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "User registered", user, http.StatusCreated)
	}
}

// LoginHandler handles POST /api/v1/users/login
//
// @Summary      Exchange credentials for a token pair
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.LoginReq  true  "Login payload"
// @Success      200  {object}  dtos.APIResponse
// @Failure      401  {object}  dtos.APIResponse
// @Router       /api/v1/users/login [post]
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid login payload", http.StatusBadRequest)
			return
		}

		tokens, err := h.deps.Services.User.Login(r.Context(), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Login successful", tokens)
	}
}
