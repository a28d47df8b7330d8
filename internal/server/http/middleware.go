package http

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/auth"
	"github.com/labstack/echo/v4"
)

// authenticate requires a valid bearer token. A missing token is 401, a token
// that does not verify is 403.
func (s *HTTPServer) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(common.AuthorizationHeaderName))
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
		}

		userID, err := s.users.Authenticate(token)
		if err != nil {
			s.logger.Debug(c.Request().Context(), "token rejected", "error", err)
			return echo.NewHTTPError(http.StatusForbidden, "Invalid Token")
		}

		req := c.Request()
		c.SetRequest(req.WithContext(auth.WithUserID(req.Context(), userID)))
		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// currentUserID returns the identity stored by authenticate.
func currentUserID(c echo.Context) (string, error) {
	userID, ok := auth.UserIDFromContext(c.Request().Context())
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
	}
	return userID, nil
}
