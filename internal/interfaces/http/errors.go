package http

import (
	"errors"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	ldomain "github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/labstack/echo/v4"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type mappedError struct {
	status int
	body   ErrorResponse
}

func mapError(err error) mappedError {
	var domainErr *bookings.Error
	if errors.As(err, &domainErr) {
		return mappedError{
			status: statusForKind(domainErr.Kind),
			body:   ErrorResponse{Error: domainErr.Message, Kind: domainErr.Kind.String()},
		}
	}

	var listingErr ldomain.ValidationError
	if errors.As(err, &listingErr) {
		return mappedError{
			status: http.StatusUnprocessableEntity,
			body:   ErrorResponse{Error: listingErr.Message, Kind: bookings.KindValidation.String()},
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return mappedError{
			status: httpErr.Code,
			body:   ErrorResponse{Error: msg},
		}
	}

	return mappedError{
		status: http.StatusInternalServerError,
		body:   ErrorResponse{Error: "internal error"},
	}
}

func statusForKind(kind bookings.ErrorKind) int {
	switch kind {
	case bookings.KindValidation:
		return http.StatusUnprocessableEntity
	case bookings.KindAuthentication:
		return http.StatusUnauthorized
	case bookings.KindAuthorization:
		return http.StatusForbidden
	case bookings.KindConflict:
		return http.StatusConflict
	case bookings.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	mapped := mapError(err)

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(mapped.status)
	} else {
		writeErr = c.JSON(mapped.status, mapped.body)
	}
	if writeErr != nil {
		log.FromContext(c.Request().Context()).
			WithError(writeErr).
			Error("Failed to write error response")
	}
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
