package entities

import (
	"github.com/google/uuid"
	"time"
)

const eventSource = "wanderease.bookings"

type EventHeader struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	// IdempotencyKey is the same for every delivery of one booking state
	// change, while ID differs per publication.
	IdempotencyKey string `json:"idempotency_key"`
}

// NewEventHeader builds the header of an event recording transition of the
// given booking, e.g. "requested" or "cancelled".
func NewEventHeader(transition string, bookingID uuid.UUID) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		Source:         eventSource,
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: "booking-" + transition + "-" + bookingID.String(),
	}
}
