package handler

import (
	"net/http"

	models "confighub/internal/domain/models/configsys"
	"confighub/internal/httputil"
)

// DashboardSource produces the overview aggregate
type DashboardSource interface {
	Dashboard() models.Dashboard
}

// DashboardHandler serves the overview page
type DashboardHandler struct {
	source DashboardSource
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(source DashboardSource) *DashboardHandler {
	return &DashboardHandler{source: source}
}

// GetDashboard returns collection counts, the current workspace and recent activity
// GET /api/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.source.Dashboard())
}
