package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewGormDB opens gorm on an existing connection pool so that listings and
// bookings share one set of connections.
func NewGormDB(db *sql.DB) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	return gormDB, nil
}

type ListingsRepo struct {
	db *gorm.DB
}

func NewListingsRepo(db *gorm.DB) *ListingsRepo {
	return &ListingsRepo{db: db}
}

func (r *ListingsRepo) CreateListing(ctx context.Context, listing listings.Listing) (uuid.UUID, error) {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}

	err := r.db.WithContext(ctx).Create(&listing).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return listing.ID, nil
}

func (r *ListingsRepo) GetListing(ctx context.Context, id uuid.UUID) (listings.Listing, error) {
	var listing listings.Listing

	err := r.db.WithContext(ctx).First(&listing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return listings.Listing{}, bookings.ErrListingNotFound
	}
	if err != nil {
		return listings.Listing{}, fmt.Errorf("failed to get listing: %w", err)
	}

	return listing, nil
}

func (r *ListingsRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]listings.Listing, error) {
	var list []listings.Listing

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings of owner %s: %w", ownerID, err)
	}

	return list, nil
}
