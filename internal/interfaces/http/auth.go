package http

import (
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/labstack/echo/v4"
	"net/http"
	"strings"
)

const principalKey = "principal"

// principalMiddleware resolves the bearer token into a principal. Requests
// without a token continue as anonymous and are rejected by the operations
// that need a user; a malformed or invalid token is rejected right away.
func principalMiddleware(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				c.Set(principalKey, bookings.Principal{})
				return next(c)
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := tokens.UserID(token)
			if err != nil {
				log.FromContext(c.Request().Context()).
					WithError(err).
					Info("Rejected bearer token")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := log.ToContext(c.Request().Context(),
				log.FromContext(c.Request().Context()).WithField("user_id", userID))
			c.SetRequest(c.Request().WithContext(ctx))

			c.Set(principalKey, bookings.UserPrincipal(userID))
			return next(c)
		}
	}
}

func principal(c echo.Context) bookings.Principal {
	p, _ := c.Get(principalKey).(bookings.Principal)
	return p
}
