package handler

import (
	"log/slog"
	"net/http"

	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/httputil"
)

// SessionHandler bridges the identity provider and the local profile
type SessionHandler struct {
	users  svc.UserStore
	logger *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(users svc.UserStore, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		users:  users,
		logger: logger,
	}
}

// Sync copies the verified token's email and display name into the profile.
// Claims the provider left empty keep the current profile values.
// POST /api/session/sync
func (h *SessionHandler) Sync(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)
	if claims == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "no authenticated session")
		return
	}

	var req svc.UpdateUserRequest
	if name := claims.DisplayName(); name != "" {
		req.Name = &name
	}
	if claims.Email != "" {
		email := claims.Email
		req.Email = &email
	}

	user, err := h.users.UpdateUser(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("session synced", "user_id", claims.GetUserID())
	httputil.RespondJSON(w, http.StatusOK, user)
}
