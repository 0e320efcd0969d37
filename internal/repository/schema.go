package repository

import (
	"context"
	"fmt"
	"github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

func InitializeDBSchema(ctx context.Context, db *sqlx.DB, gormDB *gorm.DB) error {
	err := gormDB.WithContext(ctx).AutoMigrate(&listings.Listing{})
	if err != nil {
		return fmt.Errorf("failed to migrate listings table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY,
	listing_id UUID NOT NULL,
	guest_id UUID NOT NULL,
	owner_id UUID NOT NULL,
	check_in DATE NOT NULL,
	check_out DATE NOT NULL,
	guests INTEGER NOT NULL CHECK (guests > 0),
	total_price NUMERIC(12, 2) NOT NULL CHECK (total_price >= 0),
	status VARCHAR(16) NOT NULL CHECK (status IN ('pending', 'confirmed', 'cancelled')),
	idempotency_key VARCHAR(255),
	created_at TIMESTAMP WITH TIME ZONE NOT NULL,
	updated_at TIMESTAMP WITH TIME ZONE NOT NULL,
	CHECK (check_out > check_in),
	CHECK (owner_id <> guest_id)
);`)
	if err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
CREATE INDEX IF NOT EXISTS bookings_active_listing_idx
	ON bookings (listing_id, check_in, check_out)
	WHERE status IN ('pending', 'confirmed');`)
	if err != nil {
		return fmt.Errorf("failed to create bookings active index: %w", err)
	}

	_, err = db.ExecContext(ctx, `
CREATE INDEX IF NOT EXISTS bookings_guest_created_idx
	ON bookings (guest_id, created_at DESC);`)
	if err != nil {
		return fmt.Errorf("failed to create bookings guest index: %w", err)
	}

	_, err = db.ExecContext(ctx, `
CREATE UNIQUE INDEX IF NOT EXISTS bookings_guest_idempotency_key_idx
	ON bookings (guest_id, idempotency_key)
	WHERE idempotency_key IS NOT NULL;`)
	if err != nil {
		return fmt.Errorf("failed to create bookings idempotency index: %w", err)
	}

	return nil
}
