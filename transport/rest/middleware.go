package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

type tokenParser interface {
	ParseToken(tokenString string) (string, error)
}

// PrincipalMiddleware - resolves the acting principal from the Authorization
// header or the auth_token cookie and stores the user id on the request
// context. Requests without a valid token are rejected.
func PrincipalMiddleware(auth tokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tokenString := bearerToken(ctx)
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing auth token")
			}

			userID, err := auth.ParseToken(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid auth token")
			}

			ctx.Set(principalKey, userID)

			return next(ctx)
		}
	}
}

// Principal - the authenticated user id set by PrincipalMiddleware.
func Principal(ctx echo.Context) string {
	userID, _ := ctx.Get(principalKey).(string)

	return userID
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := ctx.Cookie("auth_token")
	if err != nil {
		return ""
	}

	return cookie.Value
}
