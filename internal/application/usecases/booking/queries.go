package booking

import (
	"context"
	"fmt"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/google/uuid"
)

func (u *BookingsUsecase) GetBooking(
	ctx context.Context,
	principal bookings.Principal,
	bookingID uuid.UUID,
) (bookings.Booking, error) {
	if !principal.IsAuthenticated() {
		return bookings.Booking{}, bookings.ErrNotAuthenticated
	}

	booking, err := u.bookingsRepo.GetByID(ctx, bookingID)
	if err != nil {
		return bookings.Booking{}, wrapInfraError("get booking", err)
	}

	if err := bookings.CanView(principal, booking); err != nil {
		return bookings.Booking{}, err
	}

	return booking, nil
}

// ListGuestBookings returns the principal's bookings as a guest, newest first.
func (u *BookingsUsecase) ListGuestBookings(ctx context.Context, principal bookings.Principal) ([]bookings.Booking, error) {
	if principal.System || principal.UserID == uuid.Nil {
		return nil, bookings.ErrNotAuthenticated
	}

	result, err := u.bookingsRepo.ListByGuest(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guest bookings: %w", err)
	}

	return result, nil
}

// ListHostPendingBookings returns requests waiting for the principal's
// decision as a host, newest first. Inbox entries whose booking is no longer
// pending are dropped from the inbox on the way.
func (u *BookingsUsecase) ListHostPendingBookings(ctx context.Context, principal bookings.Principal) ([]bookings.Booking, error) {
	if principal.System || principal.UserID == uuid.Nil {
		return nil, bookings.ErrNotAuthenticated
	}

	ids, err := u.hostInbox.PendingBookingIDs(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read host inbox: %w", err)
	}

	rows, err := u.bookingsRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list host bookings: %w", err)
	}

	result := make([]bookings.Booking, 0, len(rows))
	for _, b := range rows {
		if b.OwnerID != principal.UserID {
			continue
		}
		if b.Status != bookings.StatusPending {
			if err := u.hostInbox.Remove(ctx, principal.UserID, b.ID); err != nil {
				log.FromContext(ctx).
					WithField("booking_id", b.ID).
					WithError(err).
					Warn("Failed to drop stale host inbox entry")
			}
			continue
		}
		result = append(result, b)
	}

	return result, nil
}
