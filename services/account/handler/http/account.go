package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/RehanWaris/vbudget/internal/pkg/logger"
	"github.com/RehanWaris/vbudget/internal/pkg/middleware"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/internal/utils"
	"github.com/RehanWaris/vbudget/services/account"
)

// AccountHandler handles HTTP requests for account activation and login
type AccountHandler struct {
	accountUC account.AccountUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUC account.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// RegisterRoutes wires the account endpoints onto the echo instance
func (h *AccountHandler) RegisterRoutes(e *echo.Echo, cfg models.JWTConfig) {
	auth := e.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/verify-self", h.VerifySelf)
	auth.POST("/login", h.Login)

	protected := e.Group("/users", middleware.JWTAuthMiddleware(cfg))
	protected.GET("/me", h.Me)
	admin := protected.Group("", middleware.RequireCapability(func(c models.Capabilities) bool { return c.CanAdminister }))
	admin.GET("/pending", h.PendingUsers)
	admin.POST("/admin-approve", h.AdminApprove)
	admin.POST("/:id/reject", h.RejectUser)
}

// Register handles employee self-registration requests
func (h *AccountHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.accountUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed",
			logger.String("email", req.Email),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registered; verification code sent", user)
}

// VerifySelf handles the self-registration OTP check
func (h *AccountHandler) VerifySelf(c echo.Context) error {
	var req models.VerifySelfRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.accountUC.VerifySelf(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verified; awaiting admin approval", user)
}

// AdminApprove handles the admin approval OTP check for a pending user
func (h *AccountHandler) AdminApprove(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AdminApproveRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.accountUC.AdminApprove(c.Request().Context(), actor, req.UserID, req.Code)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User activated", user)
}

// RejectUser handles rejecting a pending account
func (h *AccountHandler) RejectUser(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.accountUC.RejectUser(c.Request().Context(), actor, userID, req.Comment)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User rejected", user)
}

// Login handles email/password authentication
func (h *AccountHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authenticated", resp)
}

// Me returns the authenticated user's record
func (h *AccountHandler) Me(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.accountUC.GetUser(c.Request().Context(), actor.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved", user)
}

// PendingUsers lists accounts awaiting admin approval
func (h *AccountHandler) PendingUsers(c echo.Context) error {
	users, err := h.accountUC.PendingUsers(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pending users retrieved", users)
}
