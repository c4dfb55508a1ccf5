package middleware

import (
	"net/http"
	"strings"
	"time"

	"breate/backend/internal/auth"
	"breate/backend/internal/common"
	"breate/backend/internal/constants"
	"breate/backend/internal/db/repositories"
)

// AuthMiddleware validates the bearer token and resolves its subject to a
// user record, which becomes the caller identity for the request.
func AuthMiddleware(userRepo *repositories.UserRepository, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				unauthorized(w, initTime)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			email, err := auth.VerifyAccessToken(tokenString, secret)
			if err != nil {
				unauthorized(w, initTime)
				return
			}

			user, err := userRepo.GetByEmail(r.Context(), email)
			if err != nil {
				unauthorized(w, initTime)
				return
			}

			ctx := auth.SetCurrentUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, initTime time.Time) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	common.RespondError(w, initTime, nil, constants.MsgInvalidToken, http.StatusUnauthorized)
}
