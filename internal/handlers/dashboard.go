package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/hrcore/hr-admin-api/internal/errors"
	"github.com/hrcore/hr-admin-api/internal/services"
)

// DashboardHandler serves the aggregate read-model.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats returns the dashboard snapshot computed as of this request.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	snapshot, err := h.dashboardService.GetStats()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
