package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/settings"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/deepak-5656/wanderease/internal/entities"
	"github.com/deepak-5656/wanderease/internal/observability"
	"github.com/google/uuid"
	"time"
)

//go:generate mockgen -destination=mocks/mock_bookings_repo.go -package=mocks github.com/deepak-5656/wanderease/internal/application/usecases/booking BookingsRepo
type BookingsRepo interface {
	LockListing(ctx context.Context, listingID uuid.UUID) error
	HasActiveOverlap(ctx context.Context, listingID uuid.UUID, stay bookings.Stay) (bool, error)
	Create(ctx context.Context, b bookings.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (bookings.Booking, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (bookings.Booking, error)
	FindByIdempotencyKey(ctx context.Context, guestID uuid.UUID, key string) (bookings.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status bookings.Status, updatedAt time.Time) error
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]bookings.Booking, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]bookings.Booking, error)
	ListStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]bookings.Booking, error)
}

//go:generate mockgen -destination=mocks/mock_listings_repo.go -package=mocks github.com/deepak-5656/wanderease/internal/application/usecases/booking ListingsRepo
type ListingsRepo interface {
	GetListing(ctx context.Context, id uuid.UUID) (listings.Listing, error)
}

//go:generate mockgen -destination=mocks/mock_event_publisher.go -package=mocks github.com/deepak-5656/wanderease/internal/application/usecases/booking EventPublisher
type EventPublisher interface {
	// Publish must be called inside a transaction started by the manager.
	Publish(ctx context.Context, event entities.Event) error
}

//go:generate mockgen -destination=mocks/mock_host_inbox.go -package=mocks github.com/deepak-5656/wanderease/internal/application/usecases/booking HostInbox
type HostInbox interface {
	PendingBookingIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	Remove(ctx context.Context, ownerID, bookingID uuid.UUID) error
}

var ErrIdempotencyKeyReused = &bookings.Error{
	Kind:    bookings.KindConflict,
	Message: "idempotency key already used for another listing",
}

// Overlap checks rely on the per-listing advisory lock, not on isolation, so
// read committed is enough and avoids serialization failures.
var txSettings = trmsql.MustSettings(
	settings.Must(settings.WithCancelable(true)),
	trmsql.WithTxOptions(&sql.TxOptions{Isolation: sql.LevelReadCommitted}),
)

type BookingsUsecase struct {
	bookingsRepo BookingsRepo
	listingsRepo ListingsRepo
	hostInbox    HostInbox
	trManager    trm.Manager
	publisher    EventPublisher
	now          func() time.Time
}

func NewBookingsUsecase(
	bookingsRepo BookingsRepo,
	listingsRepo ListingsRepo,
	hostInbox HostInbox,
	trManager trm.Manager,
	publisher EventPublisher,
) *BookingsUsecase {
	return &BookingsUsecase{
		bookingsRepo: bookingsRepo,
		listingsRepo: listingsRepo,
		hostInbox:    hostInbox,
		trManager:    trManager,
		publisher:    publisher,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// WithClock replaces the wall clock, used by tests.
func (u *BookingsUsecase) WithClock(now func() time.Time) *BookingsUsecase {
	u.now = now
	return u
}

type CreateBookingReq struct {
	ListingID      uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	Guests         int
	IdempotencyKey string
}

type CreateBookingRes struct {
	Booking bookings.Booking
	// Replayed is set when the booking was created by an earlier request with
	// the same idempotency key.
	Replayed bool
}

func (u *BookingsUsecase) CreateBooking(
	ctx context.Context,
	principal bookings.Principal,
	req CreateBookingReq,
) (CreateBookingRes, error) {
	res, err := u.createBooking(ctx, principal, req)
	observability.ObserveBookingOperation("create", err)
	return res, err
}

func (u *BookingsUsecase) createBooking(
	ctx context.Context,
	principal bookings.Principal,
	req CreateBookingReq,
) (CreateBookingRes, error) {
	if !principal.IsAuthenticated() {
		return CreateBookingRes{}, bookings.ErrNotAuthenticated
	}

	if req.IdempotencyKey != "" && !principal.System {
		existing, found, err := u.findReplay(ctx, principal, req)
		if err != nil {
			return CreateBookingRes{}, err
		}
		if found {
			return CreateBookingRes{Booking: existing, Replayed: true}, nil
		}
	}

	listing, err := u.listingsRepo.GetListing(ctx, req.ListingID)
	if err != nil {
		return CreateBookingRes{}, wrapInfraError("get listing", err)
	}

	booking, err := bookings.NewBooking(principal, listing, bookings.BookingRequest{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
	}, u.now())
	if err != nil {
		return CreateBookingRes{}, err
	}
	booking.IdempotencyKey = req.IdempotencyKey

	err = u.trManager.DoWithSettings(ctx, txSettings, func(ctx context.Context) error {
		if err := u.bookingsRepo.LockListing(ctx, booking.ListingID); err != nil {
			return err
		}

		overlaps, err := u.bookingsRepo.HasActiveOverlap(ctx, booking.ListingID, booking.Stay())
		if err != nil {
			return err
		}
		if overlaps {
			return bookings.ErrDateRangeUnavailable
		}

		if err := u.bookingsRepo.Create(ctx, booking); err != nil {
			return err
		}

		return u.publisher.Publish(ctx, newBookingRequestedEvent(booking))
	})
	if err != nil {
		// A concurrent request with the same key may have won the insert.
		if req.IdempotencyKey != "" && bookings.KindOf(err) == 0 {
			existing, found, findErr := u.findReplay(ctx, principal, req)
			if findErr == nil && found {
				return CreateBookingRes{Booking: existing, Replayed: true}, nil
			}
		}
		return CreateBookingRes{}, wrapInfraError("create booking", err)
	}

	log.FromContext(ctx).
		WithField("booking_id", booking.ID).
		WithField("listing_id", booking.ListingID).
		WithField("nights", booking.Nights()).
		WithField("total_price", booking.TotalPrice).
		Info("Booking requested")

	return CreateBookingRes{Booking: booking}, nil
}

func (u *BookingsUsecase) findReplay(
	ctx context.Context,
	principal bookings.Principal,
	req CreateBookingReq,
) (bookings.Booking, bool, error) {
	existing, err := u.bookingsRepo.FindByIdempotencyKey(ctx, principal.UserID, req.IdempotencyKey)
	if errors.Is(err, bookings.ErrBookingNotFound) {
		return bookings.Booking{}, false, nil
	}
	if err != nil {
		return bookings.Booking{}, false, fmt.Errorf("failed to look up idempotency key: %w", err)
	}
	if existing.ListingID != req.ListingID {
		return bookings.Booking{}, false, ErrIdempotencyKeyReused
	}

	return existing, true, nil
}
