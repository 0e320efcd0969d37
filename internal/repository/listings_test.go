package repository_test

import (
	"context"
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/deepak-5656/wanderease/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestListingsRepo(t *testing.T) {
	_, gormDB := startPostgres(t)
	ctx := context.Background()

	repo := repository.NewListingsRepo(gormDB)

	listing, err := listings.NewListing(uuid.New(), "Houseboat", "On the canal", "Amsterdam", "NL", 180.5)
	require.NoError(t, err)

	id, err := repo.CreateListing(ctx, listing)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, id)

	got, err := repo.GetListing(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, listing.OwnerID, got.OwnerID)
	assert.Equal(t, "Houseboat", got.Title)
	assert.Equal(t, 180.5, got.PricePerNight)

	_, err = repo.GetListing(ctx, uuid.New())
	assert.ErrorIs(t, err, bookings.ErrListingNotFound)

	second, err := listings.NewListing(listing.OwnerID, "Barge", "", "Utrecht", "NL", 90)
	require.NoError(t, err)
	second.CreatedAt = time.Now().UTC()
	_, err = repo.CreateListing(ctx, second)
	require.NoError(t, err)

	other, err := listings.NewListing(uuid.New(), "Windmill", "", "Zaandam", "NL", 75)
	require.NoError(t, err)
	_, err = repo.CreateListing(ctx, other)
	require.NoError(t, err)

	owned, err := repo.ListByOwner(ctx, listing.OwnerID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, second.ID, owned[0].ID)
	assert.Equal(t, listing.ID, owned[1].ID)

	none, err := repo.ListByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
