package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the operator identity injected by the Auth middleware
// and fast-fails before any service call: an empty username means the
// middleware did not run or the token carries no usable identity, and an
// update without an actor cannot be audited.
func ctxActor(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
