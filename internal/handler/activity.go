package handler

import (
	"log/slog"
	"net/http"

	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/httputil"
)

const defaultActivityLimit = 20

// ActivityHandler handles the activity log
type ActivityHandler struct {
	activities svc.ActivityStore
	logger     *slog.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activities svc.ActivityStore, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
		logger:     logger,
	}
}

type logActivityBody struct {
	Type        models.ActivityType `json:"type"`
	Description string              `json:"description"`
}

// ListActivity returns recent activity, newest first. limit=0 returns everything.
// GET /api/activity?limit=
func (h *ActivityHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	limit, err := httputil.QueryInt(r, "limit", defaultActivityLimit)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.activities.RecentActivity(limit))
}

// LogActivity records an activity entry
// POST /api/activity
func (h *ActivityHandler) LogActivity(w http.ResponseWriter, r *http.Request) {
	var body logActivityBody
	if !parseBody(w, r, &body) {
		return
	}

	activity, err := h.activities.LogActivity(body.Type, body.Description)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, activity)
}
