package listings

import (
	"context"
	"fmt"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	domain "github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/google/uuid"
	"time"
)

//go:generate mockgen -destination=mocks/mock_listings_repo.go -package=mocks github.com/deepak-5656/wanderease/internal/application/usecases/listings ListingsRepo
type ListingsRepo interface {
	CreateListing(ctx context.Context, listing domain.Listing) (uuid.UUID, error)
	GetListing(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error)
}

type ListingsUsecase struct {
	listingsRepo ListingsRepo
}

func NewListingsUsecase(listingsRepo ListingsRepo) *ListingsUsecase {
	return &ListingsUsecase{
		listingsRepo: listingsRepo,
	}
}

type CreateListingReq struct {
	Title         string
	Description   string
	Location      string
	Country       string
	PricePerNight float64
}

// CreateListing publishes a listing owned by the principal.
func (u *ListingsUsecase) CreateListing(
	ctx context.Context,
	principal bookings.Principal,
	req CreateListingReq,
) (domain.Listing, error) {
	if principal.System || principal.UserID == uuid.Nil {
		return domain.Listing{}, bookings.ErrNotAuthenticated
	}

	listing, err := domain.NewListing(
		principal.UserID,
		req.Title,
		req.Description,
		req.Location,
		req.Country,
		req.PricePerNight,
	)
	if err != nil {
		return domain.Listing{}, err
	}

	listing.CreatedAt = time.Now().UTC()
	listing.UpdatedAt = listing.CreatedAt

	id, err := u.listingsRepo.CreateListing(ctx, listing)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("failed to create listing: %w", err)
	}
	listing.ID = id

	log.FromContext(ctx).
		WithField("listing_id", id).
		WithField("owner_id", listing.OwnerID).
		Info("Listing created")

	return listing, nil
}

func (u *ListingsUsecase) GetListing(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	listing, err := u.listingsRepo.GetListing(ctx, id)
	if err != nil {
		if bookings.KindOf(err) != 0 {
			return domain.Listing{}, err
		}
		return domain.Listing{}, fmt.Errorf("failed to get listing: %w", err)
	}

	return listing, nil
}

// ListOwnListings returns the listings the principal owns, newest first.
func (u *ListingsUsecase) ListOwnListings(ctx context.Context, principal bookings.Principal) ([]domain.Listing, error) {
	if principal.System || principal.UserID == uuid.Nil {
		return nil, bookings.ErrNotAuthenticated
	}

	list, err := u.listingsRepo.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	return list, nil
}
