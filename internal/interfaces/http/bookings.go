package http

import (
	"github.com/deepak-5656/wanderease/internal/application/usecases/booking"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"net/http"
	"time"
)

const idempotencyKeyHeader = "Idempotency-Key"

type CreateBookingRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

type BookingResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ListingID  uuid.UUID `json:"listing_id"`
	GuestID    uuid.UUID `json:"guest_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Nights     int       `json:"nights"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func newBookingResponse(b bookings.Booking) BookingResponse {
	return BookingResponse{
		BookingID:  b.ID,
		ListingID:  b.ListingID,
		GuestID:    b.GuestID,
		OwnerID:    b.OwnerID,
		CheckIn:    b.CheckIn.Format(bookings.DateLayout),
		CheckOut:   b.CheckOut.Format(bookings.DateLayout),
		Nights:     b.Nights(),
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     b.Status.String(),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func newBookingsResponse(list []bookings.Booking) BookingsResponse {
	resp := BookingsResponse{Bookings: make([]BookingResponse, 0, len(list))}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, newBookingResponse(b))
	}
	return resp
}

func (s *Server) CreateBookingHandler(c echo.Context) error {
	if !principal(c).IsAuthenticated() {
		return bookings.ErrNotAuthenticated
	}

	listingID, err := uuidParam(c, "listing_id")
	if err != nil {
		return err
	}

	var request CreateBookingRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("malformed request body")
	}

	checkIn, err := bookings.ParseDay(request.CheckIn)
	if err != nil {
		return bookings.NewValidationError("invalid check_in date")
	}
	checkOut, err := bookings.ParseDay(request.CheckOut)
	if err != nil {
		return bookings.NewValidationError("invalid check_out date")
	}

	res, err := s.bookingsService.CreateBooking(c.Request().Context(), principal(c),
		booking.CreateBookingReq{
			ListingID:      listingID,
			CheckIn:        checkIn,
			CheckOut:       checkOut,
			Guests:         request.Guests,
			IdempotencyKey: c.Request().Header.Get(idempotencyKeyHeader),
		})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}

	return c.JSON(status, newBookingResponse(res.Booking))
}

func (s *Server) CancelBookingHandler(c echo.Context) error {
	ref, err := bookingRef(c)
	if err != nil {
		return err
	}

	b, err := s.bookingsService.CancelBooking(c.Request().Context(), principal(c), ref)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newBookingResponse(b))
}

func (s *Server) ConfirmBookingHandler(c echo.Context) error {
	ref, err := bookingRef(c)
	if err != nil {
		return err
	}

	b, err := s.bookingsService.ConfirmBooking(c.Request().Context(), principal(c), ref)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newBookingResponse(b))
}

func (s *Server) GetBookingHandler(c echo.Context) error {
	bookingID, err := uuidParam(c, "booking_id")
	if err != nil {
		return err
	}

	b, err := s.bookingsService.GetBooking(c.Request().Context(), principal(c), bookingID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newBookingResponse(b))
}

func (s *Server) GuestBookingsHandler(c echo.Context) error {
	list, err := s.bookingsService.ListGuestBookings(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newBookingsResponse(list))
}

func (s *Server) HostPendingBookingsHandler(c echo.Context) error {
	list, err := s.bookingsService.ListHostPendingBookings(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newBookingsResponse(list))
}

func bookingRef(c echo.Context) (booking.BookingRef, error) {
	listingID, err := uuidParam(c, "listing_id")
	if err != nil {
		return booking.BookingRef{}, err
	}

	bookingID, err := uuidParam(c, "booking_id")
	if err != nil {
		return booking.BookingRef{}, err
	}

	return booking.BookingRef{ListingID: listingID, BookingID: bookingID}, nil
}
