package bookings

import (
	"github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/google/uuid"
	"math"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status blocks its date range.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

// Booking is a guest's reservation of a listing. OwnerID is the listing owner
// at the time the booking was made and is not updated if the listing changes hands.
type Booking struct {
	ID             uuid.UUID `json:"id"`
	ListingID      uuid.UUID `json:"listing_id"`
	GuestID        uuid.UUID `json:"guest_id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	Guests         int       `json:"guests"`
	TotalPrice     float64   `json:"total_price"`
	Status         Status    `json:"status"`
	IdempotencyKey string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MaxGuests is the largest party the ledger's guests column can hold.
const MaxGuests = math.MaxInt32

type BookingRequest struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// NewBooking validates the request against the listing and returns a pending
// booking priced from the listing's nightly rate. Availability is not checked here.
func NewBooking(
	principal Principal,
	listing listings.Listing,
	req BookingRequest,
	now time.Time,
) (Booking, error) {
	if err := CanCreate(principal, listing); err != nil {
		return Booking{}, err
	}

	stay, err := NewStay(req.CheckIn, req.CheckOut, now)
	if err != nil {
		return Booking{}, err
	}

	if req.Guests < 1 {
		return Booking{}, ErrInvalidGuests
	}
	if req.Guests > MaxGuests {
		return Booking{}, ErrTooManyGuests
	}

	total := TotalPrice(listing.PricePerNight, stay.Nights(), req.Guests)
	if total > MaxTotalPrice {
		return Booking{}, ErrTotalPriceOutOfRange
	}

	return Booking{
		ID:         uuid.New(),
		ListingID:  listing.ID,
		GuestID:    principal.UserID,
		OwnerID:    listing.OwnerID,
		CheckIn:    stay.CheckIn,
		CheckOut:   stay.CheckOut,
		Guests:     req.Guests,
		TotalPrice: total,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (b Booking) Stay() Stay {
	return Stay{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

func (b Booking) Nights() int {
	return b.Stay().Nights()
}

// Confirm moves the booking to confirmed. Confirming an already confirmed
// booking is a no-op; a cancelled booking cannot be confirmed because its
// range is no longer protected by the availability check.
func (b *Booking) Confirm(now time.Time) (changed bool, err error) {
	switch b.Status {
	case StatusConfirmed:
		return false, nil
	case StatusCancelled:
		return false, ErrBookingCancelled
	}

	b.Status = StatusConfirmed
	b.UpdatedAt = now
	return true, nil
}

func (b *Booking) Cancel(now time.Time) (changed bool) {
	if b.Status == StatusCancelled {
		return false
	}

	b.Status = StatusCancelled
	b.UpdatedAt = now
	return true
}
