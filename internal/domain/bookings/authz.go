package bookings

import (
	"github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/google/uuid"
)

// Principal is whoever is acting on a booking. System is set for internal
// actors like the pending-expiry worker, which carry no user id.
type Principal struct {
	UserID uuid.UUID
	System bool
}

func UserPrincipal(userID uuid.UUID) Principal {
	return Principal{UserID: userID}
}

func SystemPrincipal() Principal {
	return Principal{System: true}
}

func (p Principal) IsAuthenticated() bool {
	return p.System || p.UserID != uuid.Nil
}

func (p Principal) String() string {
	if p.System {
		return "system"
	}
	return p.UserID.String()
}

type Role string

const (
	RoleGuest  Role = "guest"
	RoleOwner  Role = "owner"
	RoleSystem Role = "system"
)

func CanCreate(p Principal, listing listings.Listing) error {
	if p.System {
		return ErrNotAuthorized
	}
	if p.UserID == uuid.Nil {
		return ErrNotAuthenticated
	}
	if p.UserID == listing.OwnerID {
		return ErrSelfBooking
	}
	return nil
}

// CanCancel returns the role the principal cancels as.
func CanCancel(p Principal, b Booking) (Role, error) {
	switch {
	case p.System:
		return RoleSystem, nil
	case p.UserID == uuid.Nil:
		return "", ErrNotAuthenticated
	case p.UserID == b.GuestID:
		return RoleGuest, nil
	case p.UserID == b.OwnerID:
		return RoleOwner, nil
	default:
		return "", ErrNotAuthorized
	}
}

func CanConfirm(p Principal, b Booking) error {
	if p.System {
		return ErrNotAuthorized
	}
	if p.UserID == uuid.Nil {
		return ErrNotAuthenticated
	}
	if p.UserID != b.OwnerID {
		return ErrNotAuthorized
	}
	return nil
}

// CanView allows the guest and the owner to read a booking.
func CanView(p Principal, b Booking) error {
	if p.System {
		return nil
	}
	if p.UserID == uuid.Nil {
		return ErrNotAuthenticated
	}
	if p.UserID != b.GuestID && p.UserID != b.OwnerID {
		return ErrNotAuthorized
	}
	return nil
}
