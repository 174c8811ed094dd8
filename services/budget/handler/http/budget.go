package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/RehanWaris/vbudget/internal/pkg/middleware"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/internal/utils"
	"github.com/RehanWaris/vbudget/services/budget"
)

// BudgetHandler handles HTTP requests for the budget pipeline
type BudgetHandler struct {
	budgetUC budget.BudgetUC
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetUC budget.BudgetUC) *BudgetHandler {
	return &BudgetHandler{
		budgetUC: budgetUC,
	}
}

// RegisterRoutes wires the budget endpoints onto the echo instance
func (h *BudgetHandler) RegisterRoutes(e *echo.Echo, cfg models.JWTConfig) {
	budgets := e.Group("/budgets", middleware.JWTAuthMiddleware(cfg))
	budgets.POST("", h.CreateBudget)
	budgets.POST("/import", h.ImportBudget)
	budgets.GET("", h.ListBudgets)
	budgets.GET("/:id", h.GetBudget)
	budgets.POST("/:id/submit", h.SubmitBudget)
	budgets.POST("/:id/decision", h.RecordApproval)
}

// CreateBudget drafts a budget from JSON rows
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BudgetCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	b, err := h.budgetUC.CreateBudget(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Budget drafted", b)
}

// ImportBudget drafts a budget from an uploaded element sheet. Header
// fields carry the event metadata, the multipart "sheet" part carries
// the workbook.
func (h *BudgetHandler) ImportBudget(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	req := models.BudgetCreateRequest{
		ClientName:    c.FormValue("client_name"),
		EventName:     c.FormValue("event_name"),
		EventType:     c.FormValue("event_type"),
		EventLocation: c.FormValue("event_location"),
		EventDates:    c.FormValue("event_dates"),
		Remarks:       c.FormValue("remarks"),
	}

	fileHeader, err := c.FormFile("sheet")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing element sheet upload")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read element sheet upload")
	}
	defer file.Close()

	b, err := h.budgetUC.ImportBudget(c.Request().Context(), actor, &req, file)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Budget imported", b)
}

// ListBudgets lists budgets visible to the caller
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	budgets, err := h.budgetUC.ListBudgets(c.Request().Context(), actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Budgets retrieved", budgets)
}

// GetBudget returns a budget with its items and activity log
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid budget ID")
	}

	b, err := h.budgetUC.GetBudget(c.Request().Context(), actor, id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Budget retrieved", b)
}

// SubmitBudget moves a draft into review
func (h *BudgetHandler) SubmitBudget(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid budget ID")
	}

	b, err := h.budgetUC.SubmitBudget(c.Request().Context(), actor, id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Budget submitted for review", b)
}

// RecordApproval records a reviewer decision at the budget's current stage
func (h *BudgetHandler) RecordApproval(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid budget ID")
	}

	var req models.ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	b, err := h.budgetUC.RecordApproval(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Decision recorded", b)
}
