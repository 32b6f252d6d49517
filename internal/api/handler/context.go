package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran. The role claim set is returned as a slice —
// the access policy takes caller claims as plural input.
func ctxClaims(c echo.Context) (userID string, roles []string, err error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("user_id").(string)
	return userID, []string{role}, nil
}
