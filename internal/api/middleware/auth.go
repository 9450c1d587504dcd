package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

// HeaderAuthToken is the alternate token header sent by older clients.
const HeaderAuthToken = "x-auth-token"

// Auth validates the bearer token and injects the caller identity into context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return domain.ErrUnauthenticated
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				return domain.ErrUnauthenticated
			}

			c.Set(ContextKeyUserID, identity.UserID)
			c.Set(ContextKeyRole, identity.Role)

			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Auth. ok is false when the
// request did not pass through Auth.
func IdentityFrom(c echo.Context) (identity domain.Identity, ok bool) {
	identity.UserID, _ = c.Get(ContextKeyUserID).(string)
	identity.Role, _ = c.Get(ContextKeyRole).(string)
	return identity, identity.UserID != ""
}

// tokenFromRequest accepts "Authorization: Bearer <t>", a bare
// "Authorization: <t>" and "x-auth-token: <t>", in that order.
func tokenFromRequest(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if header != "" {
		scheme, rest, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(rest)
		}
		if !found {
			return header
		}
		return ""
	}
	return strings.TrimSpace(c.Request().Header.Get(HeaderAuthToken))
}
