package bookings_test

import (
	"errors"
	"fmt"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCanCancel(t *testing.T) {
	b := bookings.Booking{GuestID: uuid.New(), OwnerID: uuid.New()}

	role, err := bookings.CanCancel(bookings.UserPrincipal(b.GuestID), b)
	require.NoError(t, err)
	assert.Equal(t, bookings.RoleGuest, role)

	role, err = bookings.CanCancel(bookings.UserPrincipal(b.OwnerID), b)
	require.NoError(t, err)
	assert.Equal(t, bookings.RoleOwner, role)

	role, err = bookings.CanCancel(bookings.SystemPrincipal(), b)
	require.NoError(t, err)
	assert.Equal(t, bookings.RoleSystem, role)

	_, err = bookings.CanCancel(bookings.UserPrincipal(uuid.New()), b)
	assert.ErrorIs(t, err, bookings.ErrNotAuthorized)

	_, err = bookings.CanCancel(bookings.Principal{}, b)
	assert.ErrorIs(t, err, bookings.ErrNotAuthenticated)
}

func TestCanConfirm(t *testing.T) {
	b := bookings.Booking{GuestID: uuid.New(), OwnerID: uuid.New()}

	assert.NoError(t, bookings.CanConfirm(bookings.UserPrincipal(b.OwnerID), b))
	assert.ErrorIs(t, bookings.CanConfirm(bookings.UserPrincipal(b.GuestID), b), bookings.ErrNotAuthorized)
	assert.ErrorIs(t, bookings.CanConfirm(bookings.UserPrincipal(uuid.New()), b), bookings.ErrNotAuthorized)
	assert.ErrorIs(t, bookings.CanConfirm(bookings.SystemPrincipal(), b), bookings.ErrNotAuthorized)
	assert.ErrorIs(t, bookings.CanConfirm(bookings.Principal{}, b), bookings.ErrNotAuthenticated)
}

func TestCanCreate(t *testing.T) {
	listing := testListing(50)

	assert.NoError(t, bookings.CanCreate(bookings.UserPrincipal(uuid.New()), listing))
	assert.ErrorIs(t, bookings.CanCreate(bookings.UserPrincipal(listing.OwnerID), listing), bookings.ErrSelfBooking)
	assert.ErrorIs(t, bookings.CanCreate(bookings.SystemPrincipal(), listing), bookings.ErrNotAuthorized)
	assert.ErrorIs(t, bookings.CanCreate(bookings.Principal{}, listing), bookings.ErrNotAuthenticated)
}

func TestCanView(t *testing.T) {
	b := bookings.Booking{GuestID: uuid.New(), OwnerID: uuid.New()}

	assert.NoError(t, bookings.CanView(bookings.UserPrincipal(b.GuestID), b))
	assert.NoError(t, bookings.CanView(bookings.UserPrincipal(b.OwnerID), b))
	assert.ErrorIs(t, bookings.CanView(bookings.UserPrincipal(uuid.New()), b), bookings.ErrNotAuthorized)
}

func TestErrorKinds(t *testing.T) {
	wrapped := fmt.Errorf("failed to create booking: %w", bookings.ErrDateRangeUnavailable)

	assert.ErrorIs(t, wrapped, bookings.ErrDateRangeUnavailable)
	assert.Equal(t, bookings.KindConflict, bookings.KindOf(wrapped))
	assert.Equal(t, bookings.KindValidation, bookings.KindOf(bookings.NewValidationError("invalid check_in date")))
	assert.Equal(t, bookings.ErrorKind(0), bookings.KindOf(errors.New("connection refused")))

	assert.NotErrorIs(t, bookings.ErrBookingNotFound, bookings.ErrListingNotFound)
}
