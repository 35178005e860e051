package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// actorID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; a route registered
// without Auth fails fast here instead of hitting the services with an
// empty actor.
func actorID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
