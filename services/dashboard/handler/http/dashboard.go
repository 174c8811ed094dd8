package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RehanWaris/vbudget/internal/pkg/middleware"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/internal/utils"
	"github.com/RehanWaris/vbudget/services/dashboard"
)

// DashboardHandler handles HTTP requests for workflow metrics
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUC) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
	}
}

// RegisterRoutes wires the dashboard endpoint onto the echo instance
func (h *DashboardHandler) RegisterRoutes(e *echo.Echo, cfg models.JWTConfig) {
	e.GET("/dashboard", h.Metrics, middleware.JWTAuthMiddleware(cfg))
}

// Metrics returns the workflow rollup
func (h *DashboardHandler) Metrics(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	metrics, err := h.dashboardUC.Metrics(c.Request().Context(), actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Metrics retrieved", metrics)
}
