package handler

import (
	"log/slog"
	"net/http"

	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/httputil"
)

// UserHandler handles the signed-in user's profile
type UserHandler struct {
	users      svc.UserStore
	activities svc.ActivityStore
	logger     *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users svc.UserStore, activities svc.ActivityStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:      users,
		activities: activities,
		logger:     logger,
	}
}

// GetProfile returns the profile
// GET /api/users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.users.User())
}

// UpdateProfile merges the provided fields into the profile and logs an
// update_profile activity
// PATCH /api/users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req svc.UpdateUserRequest
	if !parseBody(w, r, &req) {
		return
	}

	user, err := h.users.UpdateUser(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	if _, err := h.activities.LogActivity(models.ActivityUpdateProfile, "Updated profile"); err != nil {
		// the profile is already updated; don't fail the request
		h.logger.Warn("failed to log profile activity", "error", err)
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}
