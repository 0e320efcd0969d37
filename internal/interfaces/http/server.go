package http

import (
	"context"
	"errors"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/deepak-5656/wanderease/internal/application/usecases/booking"
	"github.com/deepak-5656/wanderease/internal/application/usecases/listings"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	ldomain "github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/deepak-5656/wanderease/internal/observability"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

//go:generate mockgen -destination=mocks/mock_bookings_service.go -package=mocks github.com/deepak-5656/wanderease/internal/interfaces/http BookingsService
type BookingsService interface {
	CreateBooking(ctx context.Context, principal bookings.Principal, req booking.CreateBookingReq) (booking.CreateBookingRes, error)
	CancelBooking(ctx context.Context, principal bookings.Principal, ref booking.BookingRef) (bookings.Booking, error)
	ConfirmBooking(ctx context.Context, principal bookings.Principal, ref booking.BookingRef) (bookings.Booking, error)
	GetBooking(ctx context.Context, principal bookings.Principal, bookingID uuid.UUID) (bookings.Booking, error)
	ListGuestBookings(ctx context.Context, principal bookings.Principal) ([]bookings.Booking, error)
	ListHostPendingBookings(ctx context.Context, principal bookings.Principal) ([]bookings.Booking, error)
}

//go:generate mockgen -destination=mocks/mock_listings_service.go -package=mocks github.com/deepak-5656/wanderease/internal/interfaces/http ListingsService
type ListingsService interface {
	CreateListing(ctx context.Context, principal bookings.Principal, req listings.CreateListingReq) (ldomain.Listing, error)
	GetListing(ctx context.Context, id uuid.UUID) (ldomain.Listing, error)
	ListOwnListings(ctx context.Context, principal bookings.Principal) ([]ldomain.Listing, error)
}

type TokenVerifier interface {
	UserID(token string) (uuid.UUID, error)
}

// HealthCheck reports an unhealthy dependency with a non-nil error.
type HealthCheck func(ctx context.Context) error

type Server struct {
	e    *echo.Echo
	addr string

	bookingsService BookingsService
	listingsService ListingsService
}

func NewServer(
	e *echo.Echo,
	addr string,
	bookingsService BookingsService,
	listingsService ListingsService,
	tokens TokenVerifier,
	healthChecks ...HealthCheck,
) *Server {
	srv := &Server{
		e:               e,
		addr:            addr,
		bookingsService: bookingsService,
		listingsService: listingsService,
	}

	e.HTTPErrorHandler = errorHandler
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second

	e.Use(loggingMiddleware)
	e.Use(metricsMiddleware)

	e.GET("/health", healthHandler(healthChecks))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("", principalMiddleware(tokens))

	api.POST("/listings", srv.CreateListingHandler)
	api.GET("/listings/:listing_id", srv.GetListingHandler)

	api.POST("/listings/:listing_id/bookings", srv.CreateBookingHandler)
	api.DELETE("/listings/:listing_id/bookings/:booking_id", srv.CancelBookingHandler)
	api.PATCH("/listings/:listing_id/bookings/:booking_id/confirm", srv.ConfirmBookingHandler)
	api.GET("/bookings/:booking_id", srv.GetBookingHandler)

	api.GET("/profile/bookings", srv.GuestBookingsHandler)
	api.GET("/profile/listings", srv.OwnListingsHandler)
	api.GET("/host/pending-bookings", srv.HostPendingBookingsHandler)

	return srv
}

func (s *Server) Start() error {
	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func healthHandler(checks []HealthCheck) echo.HandlerFunc {
	return func(c echo.Context) error {
		for _, check := range checks {
			if err := check(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, err.Error())
			}
		}
		return c.String(http.StatusOK, "ok")
	}
}

func loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log.FromContext(c.Request().Context()).
			WithField("method", c.Request().Method).
			WithField("path", c.Request().URL.Path).
			Info("Handling a request")

		err := next(c)
		if err != nil && mapError(err).status >= http.StatusInternalServerError {
			log.FromContext(c.Request().Context()).
				WithError(err).
				Error("Request handling error")
		}

		return err
	}
}

func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = mapError(err).status
		}
		observability.ObserveHTTPRequest(c.Request().Method, c.Path(), status, time.Since(start).Seconds())

		return err
	}
}
