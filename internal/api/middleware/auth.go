package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atelierhub/design-collab/internal/core/domain"
	"github.com/atelierhub/design-collab/internal/core/ports"
	"github.com/atelierhub/design-collab/internal/core/service"
)

// UserContextKey is where Auth stores the resolved *domain.User.
const UserContextKey = "user"

// Auth validates the bearer token and resolves it to a live user record,
// which is injected into the request context. The token alone is not trusted
// as identity: the encoded id must still exist in the credential store.
//
// Missing, malformed, expired, or unresolvable tokens all map to 403.
func Auth(codec *service.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusForbidden, "no token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusForbidden, "invalid authorization header")
			}

			userID, _, err := codec.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "access denied")
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
