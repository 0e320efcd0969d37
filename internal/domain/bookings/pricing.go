package bookings

import "math"

// MaxTotalPrice is the largest total the ledger column can store.
const MaxTotalPrice = 9_999_999_999.99

// TotalPrice is the nightly rate times nights times guests, rounded to cents.
// There is no tiered or per-extra-guest pricing.
func TotalPrice(pricePerNight float64, nights, guests int) float64 {
	if nights <= 0 || guests <= 0 || pricePerNight <= 0 {
		return 0
	}
	return math.Round(pricePerNight*float64(nights)*float64(guests)*100) / 100
}
