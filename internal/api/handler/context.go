package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Identity is the authenticated caller as populated by the Auth middleware.
type Identity struct {
	Email    string
	Username string
	UserID   string
	Role     string
}

// ctxIdentity extracts the identity the Auth middleware injected and
// fast-fails before any service call. A missing username proves the
// middleware did not run (or the token carried no usable claims).
func ctxIdentity(c echo.Context) (Identity, error) {
	id := Identity{}
	id.Email, _ = c.Get("email").(string)
	id.Username, _ = c.Get("username").(string)
	id.UserID, _ = c.Get("user_id").(string)
	id.Role, _ = c.Get("role").(string)

	if id.Username == "" {
		return Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
