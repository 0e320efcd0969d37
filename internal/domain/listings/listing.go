package listings

import (
	"github.com/google/uuid"
	"time"
)

type Listing struct {
	ID            uuid.UUID `json:"listing_id" gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Country       string    `json:"country"`
	PricePerNight float64   `json:"price_per_night" gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}

type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewListing(ownerID uuid.UUID, title, description, location, country string, pricePerNight float64) (Listing, error) {
	if ownerID == uuid.Nil {
		return Listing{}, ValidationError{Message: "owner is required"}
	}
	if title == "" {
		return Listing{}, ValidationError{Message: "title is required"}
	}
	if pricePerNight < 0 {
		return Listing{}, ValidationError{Message: "price must not be negative"}
	}

	return Listing{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Title:         title,
		Description:   description,
		Location:      location,
		Country:       country,
		PricePerNight: pricePerNight,
	}, nil
}
