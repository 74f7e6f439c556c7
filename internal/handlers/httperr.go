package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sayan42/vidmesh/backend/internal/middleware"
	"github.com/sayan42/vidmesh/backend/internal/services"
)

// httpError maps the service error taxonomy onto status codes. Anything
// untyped is a store or infrastructure failure and stays a 500.
func httpError(err error) error {
	if kind, ok := services.ErrorKind(err); ok {
		switch kind {
		case services.KindInvalidReference, services.KindInvalidOperation:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case services.KindNotFound:
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case services.KindForbidden:
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// currentUserID returns the authenticated user's id set by the JWT
// middleware, or zero when the request is unauthenticated.
func currentUserID(c echo.Context) uint {
	if id, ok := c.Get(middleware.UserIDKey).(uint); ok {
		return id
	}
	return 0
}
