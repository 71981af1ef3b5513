package transport

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/auth"
)

// RequireJWT enforces a valid bearer token on the routes it guards and
// sets caller_id in the request context for downstream middleware (the
// per-caller rate limiter), mirroring the teacher's RequireJWT in
// internal/middleware/jwt_middleware.go.
func RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token required")
			}
			token := strings.TrimSpace(authHeader[len("bearer "):])
			callerID, err := auth.ParseJWT(token)
			if err != nil || callerID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set("caller_id", callerID)
			return next(c)
		}
	}
}
