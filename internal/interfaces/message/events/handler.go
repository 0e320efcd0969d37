package events

import (
	"context"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/deepak-5656/wanderease/internal/entities"
)

//go:generate mockgen -destination=mocks/host_inbox_mock.go -package=mocks . HostInbox
type HostInbox interface {
	OnBookingRequested(ctx context.Context, event *entities.BookingRequested_v1) error
	OnBookingConfirmed(ctx context.Context, event *entities.BookingConfirmed_v1) error
	OnBookingCancelled(ctx context.Context, event *entities.BookingCancelled_v1) error
}

type Handler struct {
	hostInbox HostInbox
}

func NewHandler(hostInbox HostInbox) *Handler {
	return &Handler{
		hostInbox: hostInbox,
	}
}

func (h *Handler) Handlers() []cqrs.EventHandler {
	return []cqrs.EventHandler{
		h.HostInboxOnBookingRequestedHandler(),
		h.HostInboxOnBookingConfirmedHandler(),
		h.HostInboxOnBookingCancelledHandler(),
		h.AuditBookingCancelledHandler(),
	}
}

func (h *Handler) HostInboxOnBookingRequestedHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"host_inbox.on_booking_requested",
		h.hostInbox.OnBookingRequested,
	)
}

func (h *Handler) HostInboxOnBookingConfirmedHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"host_inbox.on_booking_confirmed",
		h.hostInbox.OnBookingConfirmed,
	)
}

func (h *Handler) HostInboxOnBookingCancelledHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"host_inbox.on_booking_cancelled",
		h.hostInbox.OnBookingCancelled,
	)
}

func (h *Handler) AuditBookingCancelledHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"audit.on_booking_cancelled",
		func(ctx context.Context, event *entities.BookingCancelled_v1) error {
			log.FromContext(ctx).
				WithField("booking_id", event.BookingID).
				WithField("listing_id", event.ListingID).
				WithField("cancelled_by", event.CancelledBy).
				Info("Booking cancelled")

			return nil
		},
	)
}
