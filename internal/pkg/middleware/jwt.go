package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/RehanWaris/vbudget/internal/pkg/jwt"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/internal/utils"
)

// actorContextKey is the echo context key holding the authenticated actor.
const actorContextKey = "actor"

// JWTAuthMiddleware creates a middleware for JWT authentication. On success
// the authenticated actor is stored in the request context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			actor, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ActorFromContext returns the authenticated actor set by JWTAuthMiddleware.
func ActorFromContext(c echo.Context) (*models.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(*models.Actor)
	return actor, ok
}

// SetActor stores an actor on the context; used by tests.
func SetActor(c echo.Context, actor *models.Actor) {
	c.Set(actorContextKey, actor)
}

// RequireCapability gates a route on the actor's role capability table.
func RequireCapability(check func(models.Capabilities) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			if !check(actor.Role.Capabilities()) {
				return utils.ForbiddenResponse(c, "Insufficient role for this operation")
			}
			return next(c)
		}
	}
}
