package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// serviceError converts a service error into an HTTP error. Messages keyed by
// sentinel override the defaults; anything unrecognized becomes a 500 that
// keeps err for logging.
func serviceError(err error, messages map[error]string) *echo.HTTPError {
	for sentinel, msg := range messages {
		if errors.Is(err, sentinel) {
			return echo.NewHTTPError(statusFor(sentinel), msg).SetInternal(err)
		}
	}
	for _, sentinel := range []error{
		common.ErrorValidation, common.ErrorAlreadyExists, common.ErrorUnauthorized,
		common.ErrInvalidToken, common.ErrTokenExpired, common.ErrorForbidden, common.ErrorNotFound,
	} {
		if errors.Is(err, sentinel) {
			return echo.NewHTTPError(statusFor(sentinel), http.StatusText(statusFor(sentinel))).SetInternal(err)
		}
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
}

func statusFor(sentinel error) int {
	switch sentinel {
	case common.ErrorValidation, common.ErrorAlreadyExists:
		return http.StatusBadRequest
	case common.ErrorUnauthorized:
		return http.StatusUnauthorized
	case common.ErrInvalidToken, common.ErrTokenExpired, common.ErrorForbidden:
		return http.StatusForbidden
	case common.ErrorNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler writes every error as {"error": "..."} and logs server faults.
func (s *HTTPServer) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			msg = messageOf(he)
		}
	}

	if code >= http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Error: msg})
	}
	if err != nil {
		s.logger.Error(c.Request().Context(), "error writing response", "error", err)
	}
}

func messageOf(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case nil:
		return http.StatusText(he.Code)
	default:
		return fmt.Sprint(m)
	}
}
