package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/store"
)

// RequirePermission gates a route on a permission, resolved against the live
// aggregate rather than the token. A role edit takes effect on the next
// request without reissuing the JWT; an orphaned role grants nothing.
func RequirePermission(forum *store.Store, perm domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			allowed := false
			_ = forum.View(func(f *domain.Forum) error {
				allowed = f.HasPermission(f.FindUser(userID), perm)
				return nil
			})
			if !allowed {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
