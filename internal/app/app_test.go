package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/deepak-5656/wanderease/internal/app"
	"github.com/deepak-5656/wanderease/internal/auth"
	"github.com/deepak-5656/wanderease/internal/config"
	"github.com/deepak-5656/wanderease/internal/testenv"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"net"
	"net/http"
	"testing"
	"time"
)

type ComponentTestSuite struct {
	suite.Suite

	env        *testenv.TestEnvironment
	tokens     *auth.Tokens
	baseURL    string
	httpClient *http.Client

	cancel  context.CancelFunc
	stopped chan error
}

func TestComponentTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentTestSuite))
}

func (s *ComponentTestSuite) SetupSuite() {
	s.env = testenv.New(s.T())
	s.httpClient = &http.Client{Timeout: 5 * time.Second}

	cfg := config.Config{
		PostgresURL:         s.env.PostgresURL,
		RedisAddr:           s.env.RedisAddr,
		HTTPAddr:            freeAddr(s.T()),
		JWTSecret:           "component-test-secret",
		LogLevel:            "info",
		ExpirySweepInterval: time.Minute,
	}
	s.tokens = auth.NewTokens(cfg.JWTSecret)
	s.baseURL = "http://" + cfg.HTTPAddr

	a, err := app.NewApp(cfg, watermill.NopLogger{}, s.env.DB, s.env.RedisClient)
	require.NoError(s.T(), err, "Failed to initialize the app")

	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	s.stopped = make(chan error, 1)
	go func() {
		s.stopped <- a.Run(ctx)
	}()

	require.EventuallyWithT(s.T(), func(collect *assert.CollectT) {
		resp, err := s.httpClient.Get(s.baseURL + "/health")
		if !assert.NoError(collect, err) {
			return
		}
		defer resp.Body.Close()
		assert.Equal(collect, http.StatusOK, resp.StatusCode)
	}, 30*time.Second, 100*time.Millisecond, "App did not become healthy")
}

func (s *ComponentTestSuite) TearDownSuite() {
	if s.cancel == nil {
		return
	}
	s.cancel()

	select {
	case err := <-s.stopped:
		assert.NoError(s.T(), err)
	case <-time.After(15 * time.Second):
		s.T().Error("App did not stop in time")
	}
}

func freeAddr(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return l.Addr().String()
}

type bookingResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Nights     int       `json:"nights"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
}

type bookingsResponse struct {
	Bookings []bookingResponse `json:"bookings"`
}

func (s *ComponentTestSuite) request(method, path string, userID uuid.UUID, body any, headers ...string) *http.Response {
	var payload bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&payload).Encode(body))
	}

	req, err := http.NewRequest(method, s.baseURL+path, &payload)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")

	if userID != uuid.Nil {
		token, err := s.tokens.Issue(userID, time.Hour)
		require.NoError(s.T(), err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	s.T().Cleanup(func() {
		_ = resp.Body.Close()
	})

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (s *ComponentTestSuite) createListing(ownerID uuid.UUID, pricePerNight float64) uuid.UUID {
	resp := s.request(http.MethodPost, "/listings", ownerID, map[string]any{
		"title":           "Cottage " + uuid.NewString()[:8],
		"location":        "Galway",
		"country":         "IE",
		"price_per_night": pricePerNight,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	listing := decode[struct {
		ListingID uuid.UUID `json:"listing_id"`
	}](s.T(), resp)

	return listing.ListingID
}

func stayRequest(checkIn time.Time, nights int, guests int) map[string]any {
	return map[string]any{
		"check_in":  checkIn.Format(time.DateOnly),
		"check_out": checkIn.AddDate(0, 0, nights).Format(time.DateOnly),
		"guests":    guests,
	}
}

func (s *ComponentTestSuite) hostPending(ownerID uuid.UUID) []bookingResponse {
	resp := s.request(http.MethodGet, "/host/pending-bookings", ownerID, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	return decode[bookingsResponse](s.T(), resp).Bookings
}

func (s *ComponentTestSuite) TestBookingLifecycle() {
	ownerID := uuid.New()
	guestID := uuid.New()
	otherGuestID := uuid.New()

	listingID := s.createListing(ownerID, 100)
	bookingsPath := fmt.Sprintf("/listings/%s/bookings", listingID)
	checkIn := time.Now().UTC().AddDate(0, 1, 0)

	resp := s.request(http.MethodPost, bookingsPath, guestID, stayRequest(checkIn, 3, 2))
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	created := decode[bookingResponse](s.T(), resp)
	s.Equal(3, created.Nights)
	s.Equal(600.0, created.TotalPrice)
	s.Equal("pending", created.Status)

	// same dates shifted by the last night still conflict
	resp = s.request(http.MethodPost, bookingsPath, otherGuestID, stayRequest(checkIn.AddDate(0, 0, 3), 2, 1))
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp = s.request(http.MethodPost, bookingsPath, ownerID, stayRequest(checkIn.AddDate(0, 2, 0), 2, 1))
	s.Equal(http.StatusForbidden, resp.StatusCode)

	require.EventuallyWithT(s.T(), func(collect *assert.CollectT) {
		pending := s.hostPending(ownerID)
		if assert.Len(collect, pending, 1) {
			assert.Equal(collect, created.BookingID, pending[0].BookingID)
		}
	}, 10*time.Second, 100*time.Millisecond, "booking request did not reach the host inbox")

	bookingPath := fmt.Sprintf("%s/%s", bookingsPath, created.BookingID)

	resp = s.request(http.MethodPatch, bookingPath+"/confirm", guestID, nil)
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp = s.request(http.MethodPatch, bookingPath+"/confirm", ownerID, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	s.Equal("confirmed", decode[bookingResponse](s.T(), resp).Status)

	require.EventuallyWithT(s.T(), func(collect *assert.CollectT) {
		assert.Empty(collect, s.hostPending(ownerID))
	}, 10*time.Second, 100*time.Millisecond)

	resp = s.request(http.MethodDelete, bookingPath, otherGuestID, nil)
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp = s.request(http.MethodDelete, bookingPath, guestID, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	s.Equal("cancelled", decode[bookingResponse](s.T(), resp).Status)

	resp = s.request(http.MethodPatch, bookingPath+"/confirm", ownerID, nil)
	s.Equal(http.StatusConflict, resp.StatusCode)

	// released dates can be booked again
	resp = s.request(http.MethodPost, bookingsPath, otherGuestID, stayRequest(checkIn, 3, 1))
	s.Equal(http.StatusCreated, resp.StatusCode)

	resp = s.request(http.MethodGet, "/profile/bookings", guestID, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	guestBookings := decode[bookingsResponse](s.T(), resp).Bookings
	if s.Len(guestBookings, 1) {
		s.Equal("cancelled", guestBookings[0].Status)
	}
}

func (s *ComponentTestSuite) TestIdempotentCreate() {
	ownerID := uuid.New()
	guestID := uuid.New()

	listingID := s.createListing(ownerID, 75)
	bookingsPath := fmt.Sprintf("/listings/%s/bookings", listingID)
	body := stayRequest(time.Now().UTC().AddDate(0, 3, 0), 2, 1)

	resp := s.request(http.MethodPost, bookingsPath, guestID, body, "Idempotency-Key", "retry-me")
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	first := decode[bookingResponse](s.T(), resp)

	resp = s.request(http.MethodPost, bookingsPath, guestID, body, "Idempotency-Key", "retry-me")
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	s.Equal(first.BookingID, decode[bookingResponse](s.T(), resp).BookingID)
}

func (s *ComponentTestSuite) TestAnonymousRequests() {
	listingID := s.createListing(uuid.New(), 50)

	resp := s.request(http.MethodPost, fmt.Sprintf("/listings/%s/bookings", listingID), uuid.Nil,
		stayRequest(time.Now().UTC().AddDate(0, 1, 0), 1, 1))
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("not authenticated", decode[struct {
		Error string `json:"error"`
	}](s.T(), resp).Error)

	resp = s.request(http.MethodPost, fmt.Sprintf("/listings/%s/bookings", listingID), uuid.Nil, map[string]any{})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp = s.request(http.MethodGet, "/listings/"+listingID.String(), uuid.Nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}
