package booking_test

import (
	"context"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGetBooking(t *testing.T) {
	ctx := context.Background()
	b := pendingBooking()

	t.Run("guest", func(t *testing.T) {
		f := newFixture(t)
		f.bookingsRepo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

		got, err := f.usecase.GetBooking(ctx, bookings.UserPrincipal(b.GuestID), b.ID)
		require.NoError(t, err)
		assert.Equal(t, b, got)
	})

	t.Run("stranger", func(t *testing.T) {
		f := newFixture(t)
		f.bookingsRepo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

		_, err := f.usecase.GetBooking(ctx, bookings.UserPrincipal(uuid.New()), b.ID)
		assert.ErrorIs(t, err, bookings.ErrNotAuthorized)
	})
}

func TestListHostPendingBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := uuid.New()

	pending := pendingBooking()
	pending.OwnerID = ownerID

	confirmed := pendingBooking()
	confirmed.OwnerID = ownerID
	confirmed.Status = bookings.StatusConfirmed

	foreign := pendingBooking()

	ids := []uuid.UUID{pending.ID, confirmed.ID, foreign.ID}

	f.hostInbox.EXPECT().PendingBookingIDs(gomock.Any(), ownerID).Return(ids, nil)
	f.bookingsRepo.EXPECT().ListByIDs(gomock.Any(), ids).Return([]bookings.Booking{pending, confirmed, foreign}, nil)
	f.hostInbox.EXPECT().Remove(gomock.Any(), ownerID, confirmed.ID).Return(nil)

	result, err := f.usecase.ListHostPendingBookings(ctx, bookings.UserPrincipal(ownerID))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, pending.ID, result[0].ID)
}

func TestListGuestBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	guestID := uuid.New()
	first := pendingBooking()
	second := pendingBooking()

	f.bookingsRepo.EXPECT().ListByGuest(gomock.Any(), guestID).Return([]bookings.Booking{first, second}, nil)

	result, err := f.usecase.ListGuestBookings(ctx, bookings.UserPrincipal(guestID))
	require.NoError(t, err)
	assert.Len(t, result, 2)

	_, err = f.usecase.ListGuestBookings(ctx, bookings.SystemPrincipal())
	assert.ErrorIs(t, err, bookings.ErrNotAuthenticated)
}
