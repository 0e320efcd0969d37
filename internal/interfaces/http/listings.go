package http

import (
	"github.com/deepak-5656/wanderease/internal/application/usecases/listings"
	ldomain "github.com/deepak-5656/wanderease/internal/domain/listings"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"net/http"
	"time"
)

type CreateListingRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	Country       string  `json:"country"`
	PricePerNight float64 `json:"price_per_night"`
}

type ListingResponse struct {
	ListingID     uuid.UUID `json:"listing_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Country       string    `json:"country"`
	PricePerNight float64   `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
}

func newListingResponse(l ldomain.Listing) ListingResponse {
	return ListingResponse{
		ListingID:     l.ID,
		OwnerID:       l.OwnerID,
		Title:         l.Title,
		Description:   l.Description,
		Location:      l.Location,
		Country:       l.Country,
		PricePerNight: l.PricePerNight,
		CreatedAt:     l.CreatedAt,
	}
}

func (s *Server) CreateListingHandler(c echo.Context) error {
	var request CreateListingRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("malformed request body")
	}

	listing, err := s.listingsService.CreateListing(c.Request().Context(), principal(c),
		listings.CreateListingReq{
			Title:         request.Title,
			Description:   request.Description,
			Location:      request.Location,
			Country:       request.Country,
			PricePerNight: request.PricePerNight,
		})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newListingResponse(listing))
}

func (s *Server) GetListingHandler(c echo.Context) error {
	listingID, err := uuidParam(c, "listing_id")
	if err != nil {
		return err
	}

	listing, err := s.listingsService.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newListingResponse(listing))
}

func (s *Server) OwnListingsHandler(c echo.Context) error {
	list, err := s.listingsService.ListOwnListings(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}

	resp := ListingsResponse{Listings: make([]ListingResponse, 0, len(list))}
	for _, l := range list {
		resp.Listings = append(resp.Listings, newListingResponse(l))
	}

	return c.JSON(http.StatusOK, resp)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, badRequest("invalid " + name)
	}
	return id, nil
}
