package booking

import (
	"context"
	"fmt"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/deepak-5656/wanderease/internal/observability"
	"github.com/google/uuid"
	"time"
)

// BookingRef addresses a booking. ListingID is optional; when set, a booking
// of another listing is reported as not found.
type BookingRef struct {
	ListingID uuid.UUID
	BookingID uuid.UUID
}

func (u *BookingsUsecase) CancelBooking(
	ctx context.Context,
	principal bookings.Principal,
	ref BookingRef,
) (bookings.Booking, error) {
	b, err := u.cancelBooking(ctx, principal, ref)
	observability.ObserveBookingOperation("cancel", err)
	return b, err
}

func (u *BookingsUsecase) cancelBooking(
	ctx context.Context,
	principal bookings.Principal,
	ref BookingRef,
) (bookings.Booking, error) {
	if !principal.IsAuthenticated() {
		return bookings.Booking{}, bookings.ErrNotAuthenticated
	}

	var booking bookings.Booking
	err := u.trManager.DoWithSettings(ctx, txSettings, func(ctx context.Context) error {
		var err error
		booking, err = u.lockBooking(ctx, ref)
		if err != nil {
			return err
		}

		role, err := bookings.CanCancel(principal, booking)
		if err != nil {
			return err
		}

		if !booking.Cancel(u.now()) {
			return nil
		}

		if err := u.bookingsRepo.UpdateStatus(ctx, booking.ID, booking.Status, booking.UpdatedAt); err != nil {
			return err
		}

		return u.publisher.Publish(ctx, newBookingCancelledEvent(booking, role))
	})
	if err != nil {
		return bookings.Booking{}, wrapInfraError("cancel booking", err)
	}

	log.FromContext(ctx).
		WithField("booking_id", booking.ID).
		WithField("principal", principal.String()).
		Info("Booking cancelled")

	return booking, nil
}

func (u *BookingsUsecase) ConfirmBooking(
	ctx context.Context,
	principal bookings.Principal,
	ref BookingRef,
) (bookings.Booking, error) {
	b, err := u.confirmBooking(ctx, principal, ref)
	observability.ObserveBookingOperation("confirm", err)
	return b, err
}

func (u *BookingsUsecase) confirmBooking(
	ctx context.Context,
	principal bookings.Principal,
	ref BookingRef,
) (bookings.Booking, error) {
	if !principal.IsAuthenticated() {
		return bookings.Booking{}, bookings.ErrNotAuthenticated
	}

	var booking bookings.Booking
	err := u.trManager.DoWithSettings(ctx, txSettings, func(ctx context.Context) error {
		var err error
		booking, err = u.lockBooking(ctx, ref)
		if err != nil {
			return err
		}

		if err := bookings.CanConfirm(principal, booking); err != nil {
			return err
		}

		changed, err := booking.Confirm(u.now())
		if err != nil || !changed {
			return err
		}

		if err := u.bookingsRepo.UpdateStatus(ctx, booking.ID, booking.Status, booking.UpdatedAt); err != nil {
			return err
		}

		return u.publisher.Publish(ctx, newBookingConfirmedEvent(booking))
	})
	if err != nil {
		return bookings.Booking{}, wrapInfraError("confirm booking", err)
	}

	log.FromContext(ctx).
		WithField("booking_id", booking.ID).
		Info("Booking confirmed")

	return booking, nil
}

// ExpirePendingBooking cancels a booking as the system principal, but only if
// it is still pending once locked.
func (u *BookingsUsecase) ExpirePendingBooking(ctx context.Context, bookingID uuid.UUID) (expired bool, err error) {
	err = u.trManager.DoWithSettings(ctx, txSettings, func(ctx context.Context) error {
		booking, err := u.bookingsRepo.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status != bookings.StatusPending {
			return nil
		}

		role, err := bookings.CanCancel(bookings.SystemPrincipal(), booking)
		if err != nil {
			return err
		}

		booking.Cancel(u.now())
		if err := u.bookingsRepo.UpdateStatus(ctx, booking.ID, booking.Status, booking.UpdatedAt); err != nil {
			return err
		}

		expired = true
		return u.publisher.Publish(ctx, newBookingCancelledEvent(booking, role))
	})
	if err != nil {
		return false, wrapInfraError("expire booking", err)
	}

	if expired {
		observability.ObserveBookingOperation("expire", nil)
	}
	return expired, nil
}

// ExpireStalePending expires up to limit bookings that have been pending for
// longer than ttl and returns how many were actually cancelled.
func (u *BookingsUsecase) ExpireStalePending(ctx context.Context, ttl time.Duration, limit int) (int, error) {
	stale, err := u.bookingsRepo.ListStalePending(ctx, u.now().Add(-ttl), limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale pending bookings: %w", err)
	}

	var count int
	for _, b := range stale {
		expired, err := u.ExpirePendingBooking(ctx, b.ID)
		if err != nil {
			return count, err
		}
		if expired {
			count++
		}
	}

	return count, nil
}

func (u *BookingsUsecase) lockBooking(ctx context.Context, ref BookingRef) (bookings.Booking, error) {
	booking, err := u.bookingsRepo.GetByIDForUpdate(ctx, ref.BookingID)
	if err != nil {
		return bookings.Booking{}, err
	}
	if ref.ListingID != uuid.Nil && booking.ListingID != ref.ListingID {
		return bookings.Booking{}, bookings.ErrBookingNotFound
	}

	return booking, nil
}

// wrapInfraError leaves domain rejections untouched so callers can map them.
func wrapInfraError(op string, err error) error {
	if bookings.KindOf(err) != 0 {
		return err
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
