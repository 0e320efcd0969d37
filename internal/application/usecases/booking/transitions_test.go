package booking_test

import (
	"context"
	"github.com/deepak-5656/wanderease/internal/application/usecases/booking"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/deepak-5656/wanderease/internal/entities"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func pendingBooking() bookings.Booking {
	return bookings.Booking{
		ID:         uuid.New(),
		ListingID:  uuid.New(),
		GuestID:    uuid.New(),
		OwnerID:    uuid.New(),
		CheckIn:    day("2025-06-01"),
		CheckOut:   day("2025-06-04"),
		Guests:     2,
		TotalPrice: 600,
		Status:     bookings.StatusPending,
		CreatedAt:  testNow.Add(-time.Hour),
		UpdatedAt:  testNow.Add(-time.Hour),
	}
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		principal   func(b bookings.Booking) bookings.Principal
		cancelledBy bookings.Role
	}{
		{
			name:        "by guest",
			principal:   func(b bookings.Booking) bookings.Principal { return bookings.UserPrincipal(b.GuestID) },
			cancelledBy: bookings.RoleGuest,
		},
		{
			name:        "by owner",
			principal:   func(b bookings.Booking) bookings.Principal { return bookings.UserPrincipal(b.OwnerID) },
			cancelledBy: bookings.RoleOwner,
		},
		{
			name:        "by system",
			principal:   func(bookings.Booking) bookings.Principal { return bookings.SystemPrincipal() },
			cancelledBy: bookings.RoleSystem,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			b := pendingBooking()

			f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)
			f.bookingsRepo.EXPECT().UpdateStatus(gomock.Any(), b.ID, bookings.StatusCancelled, testNow).Return(nil)

			var published entities.Event
			f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
				Do(func(_ context.Context, event entities.Event) {
					published = event
				}).
				Return(nil)

			cancelled, err := f.usecase.CancelBooking(ctx, tc.principal(b), booking.BookingRef{
				ListingID: b.ListingID,
				BookingID: b.ID,
			})
			require.NoError(t, err)
			assert.Equal(t, bookings.StatusCancelled, cancelled.Status)

			event, ok := published.(*entities.BookingCancelled_v1)
			require.True(t, ok, "expected BookingCancelled_v1, got %T", published)
			assert.Equal(t, string(tc.cancelledBy), event.CancelledBy)
			assert.Equal(t, b.ID, event.BookingID)
		})
	}

	t.Run("third party is rejected", func(t *testing.T) {
		f := newFixture(t)
		b := pendingBooking()

		f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)

		_, err := f.usecase.CancelBooking(ctx, bookings.UserPrincipal(uuid.New()), booking.BookingRef{BookingID: b.ID})
		assert.ErrorIs(t, err, bookings.ErrNotAuthorized)
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		f := newFixture(t)
		b := pendingBooking()
		b.Status = bookings.StatusCancelled

		f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)

		cancelled, err := f.usecase.CancelBooking(ctx, bookings.UserPrincipal(b.GuestID), booking.BookingRef{BookingID: b.ID})
		require.NoError(t, err)
		assert.Equal(t, bookings.StatusCancelled, cancelled.Status)
	})

	t.Run("confirmed booking can be cancelled", func(t *testing.T) {
		f := newFixture(t)
		b := pendingBooking()
		b.Status = bookings.StatusConfirmed

		f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)
		f.bookingsRepo.EXPECT().UpdateStatus(gomock.Any(), b.ID, bookings.StatusCancelled, testNow).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		cancelled, err := f.usecase.CancelBooking(ctx, bookings.UserPrincipal(b.OwnerID), booking.BookingRef{BookingID: b.ID})
		require.NoError(t, err)
		assert.Equal(t, bookings.StatusCancelled, cancelled.Status)
	})

	t.Run("booking of another listing", func(t *testing.T) {
		f := newFixture(t)
		b := pendingBooking()

		f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)

		_, err := f.usecase.CancelBooking(ctx, bookings.UserPrincipal(b.GuestID), booking.BookingRef{
			ListingID: uuid.New(),
			BookingID: b.ID,
		})
		assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
	})
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("owner confirms pending booking", func(t *testing.T) {
		f := newFixture(t)
		b := pendingBooking()

		f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)
		f.bookingsRepo.EXPECT().UpdateStatus(gomock.Any(), b.ID, bookings.StatusConfirmed, testNow).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(&entities.BookingConfirmed_v1{})).Return(nil)

		confirmed, err := f.usecase.ConfirmBooking(ctx, bookings.UserPrincipal(b.OwnerID), booking.BookingRef{BookingID: b.ID})
		require.NoError(t, err)
		assert.Equal(t, bookings.StatusConfirmed, confirmed.Status)
	})

	t.Run("confirming twice publishes once", func(t *testing.T) {
		f := newFixture(t)
		b := pendingBooking()
		b.Status = bookings.StatusConfirmed

		f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)

		confirmed, err := f.usecase.ConfirmBooking(ctx, bookings.UserPrincipal(b.OwnerID), booking.BookingRef{BookingID: b.ID})
		require.NoError(t, err)
		assert.Equal(t, bookings.StatusConfirmed, confirmed.Status)
	})

	t.Run("cancelled booking cannot be confirmed", func(t *testing.T) {
		f := newFixture(t)
		b := pendingBooking()
		b.Status = bookings.StatusCancelled

		f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)

		_, err := f.usecase.ConfirmBooking(ctx, bookings.UserPrincipal(b.OwnerID), booking.BookingRef{BookingID: b.ID})
		assert.ErrorIs(t, err, bookings.ErrBookingCancelled)
	})

	t.Run("guest cannot confirm", func(t *testing.T) {
		f := newFixture(t)
		b := pendingBooking()

		f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)

		_, err := f.usecase.ConfirmBooking(ctx, bookings.UserPrincipal(b.GuestID), booking.BookingRef{BookingID: b.ID})
		assert.ErrorIs(t, err, bookings.ErrNotAuthorized)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), id).Return(bookings.Booking{}, bookings.ErrBookingNotFound)

		_, err := f.usecase.ConfirmBooking(ctx, bookings.UserPrincipal(uuid.New()), booking.BookingRef{BookingID: id})
		assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
	})
}

func TestExpireStalePending(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	stale := pendingBooking()
	confirmedMeanwhile := pendingBooking()
	confirmedMeanwhileNow := confirmedMeanwhile
	confirmedMeanwhileNow.Status = bookings.StatusConfirmed

	f.bookingsRepo.EXPECT().
		ListStalePending(gomock.Any(), testNow.Add(-24*time.Hour), 10).
		Return([]bookings.Booking{stale, confirmedMeanwhile}, nil)

	f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), stale.ID).Return(stale, nil)
	f.bookingsRepo.EXPECT().UpdateStatus(gomock.Any(), stale.ID, bookings.StatusCancelled, testNow).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event entities.Event) {
			cancelled, ok := event.(*entities.BookingCancelled_v1)
			require.True(t, ok)
			assert.Equal(t, string(bookings.RoleSystem), cancelled.CancelledBy)
		}).
		Return(nil)

	f.bookingsRepo.EXPECT().GetByIDForUpdate(gomock.Any(), confirmedMeanwhile.ID).Return(confirmedMeanwhileNow, nil)

	count, err := f.usecase.ExpireStalePending(ctx, 24*time.Hour, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
