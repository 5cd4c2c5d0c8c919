package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"propdesk-backend/internal/config"
	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/permission"
	"propdesk-backend/internal/repository"
	"propdesk-backend/internal/security"
)

// AccessMiddleware authenticates requests and enforces the per-route
// permission table. It is the single gate in front of every handler: the
// route name decides whether a request is public, merely authenticated, or
// checked against the caller's permission grants.
type AccessMiddleware struct {
	tokens   security.TokenManager
	userRepo repository.UserRepository
}

func NewAccessMiddleware(tokens security.TokenManager, userRepo repository.UserRepository) *AccessMiddleware {
	return &AccessMiddleware{tokens: tokens, userRepo: userRepo}
}

func (m *AccessMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		routeName := ""
		if route := mux.CurrentRoute(r); route != nil {
			routeName = route.GetName()
		}
		access := config.GetRouteAccess(routeName)

		if access.Level == config.AccessPublic {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil || claims.Type != security.TokenTypeAccess {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "unknown user")
			return
		}
		grants, err := m.userRepo.GetPermissions(r.Context(), user.ID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to load permissions")
			return
		}
		user.Permissions = grants

		if access.Level == config.AccessGated {
			if !permission.HasPermission(user, access.Resource, access.Action) {
				logger.Warn("Permission denied",
					"user_id", user.ID,
					"route", routeName,
					"resource", string(access.Resource),
					"action", string(access.Action))
				respondError(w, http.StatusForbidden, "permission denied")
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// LoggingMiddleware logs every request with its duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
