package booking

import (
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/deepak-5656/wanderease/internal/entities"
)

func newBookingRequestedEvent(b bookings.Booking) *entities.BookingRequested_v1 {
	return &entities.BookingRequested_v1{
		Header:     entities.NewEventHeader("requested", b.ID),
		BookingID:  b.ID,
		ListingID:  b.ListingID,
		GuestID:    b.GuestID,
		OwnerID:    b.OwnerID,
		CheckIn:    b.CheckIn.Format(bookings.DateLayout),
		CheckOut:   b.CheckOut.Format(bookings.DateLayout),
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

func newBookingConfirmedEvent(b bookings.Booking) *entities.BookingConfirmed_v1 {
	return &entities.BookingConfirmed_v1{
		Header:      entities.NewEventHeader("confirmed", b.ID),
		BookingID:   b.ID,
		ListingID:   b.ListingID,
		GuestID:     b.GuestID,
		OwnerID:     b.OwnerID,
		ConfirmedAt: b.UpdatedAt,
	}
}

func newBookingCancelledEvent(b bookings.Booking, role bookings.Role) *entities.BookingCancelled_v1 {
	return &entities.BookingCancelled_v1{
		Header:      entities.NewEventHeader("cancelled", b.ID),
		BookingID:   b.ID,
		ListingID:   b.ListingID,
		GuestID:     b.GuestID,
		OwnerID:     b.OwnerID,
		CancelledBy: string(role),
		CancelledAt: b.UpdatedAt,
	}
}
