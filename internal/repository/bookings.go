package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"time"
)

type booking struct {
	ID             uuid.UUID      `db:"id"`
	ListingID      uuid.UUID      `db:"listing_id"`
	GuestID        uuid.UUID      `db:"guest_id"`
	OwnerID        uuid.UUID      `db:"owner_id"`
	CheckIn        time.Time      `db:"check_in"`
	CheckOut       time.Time      `db:"check_out"`
	Guests         int            `db:"guests"`
	TotalPrice     float64        `db:"total_price"`
	Status         string         `db:"status"`
	IdempotencyKey sql.NullString `db:"idempotency_key"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

const bookingColumns = `
	id, listing_id, guest_id, owner_id, check_in, check_out,
	guests, total_price, status, idempotency_key, created_at, updated_at`

type BookingsRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewBookingsRepo(db *sqlx.DB, getter *trmsqlx.CtxGetter) *BookingsRepo {
	return &BookingsRepo{
		db:     db,
		getter: getter,
	}
}

func (r *BookingsRepo) conn(ctx context.Context) trmsqlx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.db)
}

// LockListing serializes check-and-insert for one listing until the current
// transaction ends. Outside of a transaction the lock is released immediately.
func (r *BookingsRepo) LockListing(ctx context.Context, listingID uuid.UUID) error {
	_, err := r.conn(ctx).ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`,
		listingID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to lock listing %s: %w", listingID, err)
	}

	return nil
}

func (r *BookingsRepo) HasActiveOverlap(ctx context.Context, listingID uuid.UUID, stay bookings.Stay) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE listing_id = $1
				AND status IN ('pending', 'confirmed')
				AND check_in <= $3::date
				AND check_out >= $2::date
		)`

	var exists bool
	err := sqlx.GetContext(ctx, r.conn(ctx), &exists, query,
		listingID,
		stay.CheckIn.Format(bookings.DateLayout),
		stay.CheckOut.Format(bookings.DateLayout),
	)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	return exists, nil
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) error {
	query := `
		INSERT INTO bookings (
			id, listing_id, guest_id, owner_id, check_in, check_out,
			guests, total_price, status, idempotency_key, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5::date, $6::date, $7, $8, $9, $10, $11, $12
		)`

	idempotencyKey := sql.NullString{String: b.IdempotencyKey, Valid: b.IdempotencyKey != ""}

	_, err := r.conn(ctx).ExecContext(ctx, query,
		b.ID,
		b.ListingID,
		b.GuestID,
		b.OwnerID,
		b.CheckIn.Format(bookings.DateLayout),
		b.CheckOut.Format(bookings.DateLayout),
		b.Guests,
		b.TotalPrice,
		b.Status.String(),
		idempotencyKey,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *BookingsRepo) GetByID(ctx context.Context, id uuid.UUID) (bookings.Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

// GetByIDForUpdate must be called inside a transaction; the row stays locked
// until it ends.
func (r *BookingsRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (bookings.Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
}

func (r *BookingsRepo) FindByIdempotencyKey(ctx context.Context, guestID uuid.UUID, key string) (bookings.Booking, error) {
	return r.getOne(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE guest_id = $1 AND idempotency_key = $2`,
		guestID, key,
	)
}

func (r *BookingsRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status bookings.Status, updatedAt time.Time) error {
	res, err := r.conn(ctx).ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status.String(), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return bookings.ErrBookingNotFound
	}

	return nil
}

func (r *BookingsRepo) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]bookings.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE guest_id = $1 ORDER BY created_at DESC, id`,
		guestID,
	)
}

func (r *BookingsRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]bookings.Booking, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}

	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ANY($1::uuid[]) ORDER BY created_at DESC, id`,
		pq.StringArray(strIDs),
	)
}

func (r *BookingsRepo) ListStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]bookings.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at
		LIMIT $2`,
		createdBefore, limit,
	)
}

func (r *BookingsRepo) getOne(ctx context.Context, query string, args ...any) (bookings.Booking, error) {
	var row booking
	err := sqlx.GetContext(ctx, r.conn(ctx), &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return bookings.Booking{}, bookings.ErrBookingNotFound
	}
	if err != nil {
		return bookings.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return row.toDomain(), nil
}

func (r *BookingsRepo) list(ctx context.Context, query string, args ...any) ([]bookings.Booking, error) {
	var rows []booking
	err := sqlx.SelectContext(ctx, r.conn(ctx), &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	result := make([]bookings.Booking, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	return result, nil
}

func (b booking) toDomain() bookings.Booking {
	return bookings.Booking{
		ID:             b.ID,
		ListingID:      b.ListingID,
		GuestID:        b.GuestID,
		OwnerID:        b.OwnerID,
		CheckIn:        bookings.Day(b.CheckIn),
		CheckOut:       bookings.Day(b.CheckOut),
		Guests:         b.Guests,
		TotalPrice:     b.TotalPrice,
		Status:         bookings.Status(b.Status),
		IdempotencyKey: b.IdempotencyKey.String,
		CreatedAt:      b.CreatedAt.UTC(),
		UpdatedAt:      b.UpdatedAt.UTC(),
	}
}
