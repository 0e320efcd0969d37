package listings_test

import (
	"github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewListing(t *testing.T) {
	ownerID := uuid.New()

	l, err := listings.NewListing(ownerID, "Loft", "Sunny loft", "Lisbon", "PT", 95.5)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, l.ID)
	assert.Equal(t, ownerID, l.OwnerID)
	assert.Equal(t, 95.5, l.PricePerNight)

	_, err = listings.NewListing(uuid.Nil, "Loft", "", "", "", 10)
	assert.EqualError(t, err, "owner is required")

	_, err = listings.NewListing(ownerID, "", "", "", "", 10)
	assert.EqualError(t, err, "title is required")

	_, err = listings.NewListing(ownerID, "Loft", "", "", "", -1)
	assert.EqualError(t, err, "price must not be negative")
}
