package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhub/design-collab/internal/api/middleware"
	"github.com/atelierhub/design-collab/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its absence
// means the route was wired without the middleware; fail closed.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusForbidden, "access denied")
	}
	return user, nil
}
