package repository

import (
	"context"
	"fmt"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/deepak-5656/wanderease/internal/entities"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const hostInboxKeyPrefix = "wanderease:host-inbox:"

// HostInboxRepo keeps, per owner, the ids of booking requests waiting for a
// decision. Entries are ordered by request time. Events for one booking may be
// handled out of order, so readers must check the ledger status.
type HostInboxRepo struct {
	rdb *redis.Client
}

func NewHostInboxRepo(rdb *redis.Client) *HostInboxRepo {
	return &HostInboxRepo{rdb: rdb}
}

func hostInboxKey(ownerID uuid.UUID) string {
	return hostInboxKeyPrefix + ownerID.String()
}

func (r *HostInboxRepo) OnBookingRequested(ctx context.Context, event *entities.BookingRequested_v1) error {
	log.FromContext(ctx).
		WithField("booking_id", event.BookingID).
		WithField("owner_id", event.OwnerID).
		Info("Adding booking request to host inbox")

	err := r.rdb.ZAdd(ctx, hostInboxKey(event.OwnerID), redis.Z{
		Score:  float64(event.CreatedAt.UnixMilli()),
		Member: event.BookingID.String(),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to add booking %s to host inbox: %w", event.BookingID, err)
	}

	return nil
}

func (r *HostInboxRepo) OnBookingConfirmed(ctx context.Context, event *entities.BookingConfirmed_v1) error {
	return r.remove(ctx, event.OwnerID, event.BookingID)
}

func (r *HostInboxRepo) OnBookingCancelled(ctx context.Context, event *entities.BookingCancelled_v1) error {
	return r.remove(ctx, event.OwnerID, event.BookingID)
}

func (r *HostInboxRepo) Remove(ctx context.Context, ownerID, bookingID uuid.UUID) error {
	return r.remove(ctx, ownerID, bookingID)
}

func (r *HostInboxRepo) remove(ctx context.Context, ownerID, bookingID uuid.UUID) error {
	err := r.rdb.ZRem(ctx, hostInboxKey(ownerID), bookingID.String()).Err()
	if err != nil {
		return fmt.Errorf("failed to remove booking %s from host inbox: %w", bookingID, err)
	}

	return nil
}

// PendingBookingIDs returns the newest requests first.
func (r *HostInboxRepo) PendingBookingIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	members, err := r.rdb.ZRevRange(ctx, hostInboxKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read host inbox: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			log.FromContext(ctx).
				WithField("member", member).
				Warn("Skipping malformed host inbox entry")
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}
