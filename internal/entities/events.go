package entities

import (
	"github.com/google/uuid"
	"time"
)

type Event interface {
	GetHeader() EventHeader
}

type BookingRequested_v1 struct {
	Header EventHeader `json:"header"`

	BookingID  uuid.UUID `json:"booking_id"`
	ListingID  uuid.UUID `json:"listing_id"`
	GuestID    uuid.UUID `json:"guest_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e BookingRequested_v1) GetHeader() EventHeader {
	return e.Header
}

type BookingConfirmed_v1 struct {
	Header EventHeader `json:"header"`

	BookingID   uuid.UUID `json:"booking_id"`
	ListingID   uuid.UUID `json:"listing_id"`
	GuestID     uuid.UUID `json:"guest_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

func (e BookingConfirmed_v1) GetHeader() EventHeader {
	return e.Header
}

type BookingCancelled_v1 struct {
	Header EventHeader `json:"header"`

	BookingID   uuid.UUID `json:"booking_id"`
	ListingID   uuid.UUID `json:"listing_id"`
	GuestID     uuid.UUID `json:"guest_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CancelledBy string    `json:"cancelled_by"`
	CancelledAt time.Time `json:"cancelled_at"`
}

func (e BookingCancelled_v1) GetHeader() EventHeader {
	return e.Header
}
