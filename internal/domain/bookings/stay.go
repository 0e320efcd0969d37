package bookings

import (
	"github.com/jinzhu/now"
	"math"
	"time"
)

const DateLayout = time.DateOnly

// dayFormats are the layouts ParseDay tolerates besides DateLayout. Every
// layout carries a date; time-only layouts would resolve to today.
var dayFormats = []string{
	"2006-1-2",
	"2006-1-2 15:4",
	"2006-1-2 15:4:5",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z0700",
	time.RFC3339,
	time.RFC3339Nano,
	"2006/01/02",
	"2006/01/02 15:04:05",
	"1/2/2006",
	"1/2/2006 15:4:5",
}

// Stay is the calendar range a booking holds. Both ends are kept at midnight
// UTC so that comparisons ignore time of day and time zone.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Day strips the time of day from t, keeping the calendar date as seen in t's
// own location.
func Day(t time.Time) time.Time {
	y, m, d := now.With(t).BeginningOfDay().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a calendar date. YYYY-MM-DD is the canonical form; the
// layouts in dayFormats are accepted and truncated to the day as written,
// so an offset in an ISO timestamp does not move the date.
func ParseDay(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}

	cfg := &now.Config{TimeLocation: time.UTC, TimeFormats: dayFormats}
	t, err := cfg.Parse(value)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// NewStay validates a requested range against today.
func NewStay(checkIn, checkOut, today time.Time) (Stay, error) {
	stay := Stay{CheckIn: Day(checkIn), CheckOut: Day(checkOut)}

	if stay.CheckIn.Before(Day(today)) {
		return Stay{}, ErrCheckInInPast
	}
	if !stay.CheckOut.After(stay.CheckIn) {
		return Stay{}, ErrCheckOutNotAfterCheckIn
	}

	return stay, nil
}

// Nights counts started days between check-in and check-out.
func (s Stay) Nights() int {
	return int(math.Ceil(s.CheckOut.Sub(s.CheckIn).Hours() / 24))
}

// Overlaps uses inclusive boundaries: a stay that starts on the day another
// one ends is a conflict.
func (s Stay) Overlaps(other Stay) bool {
	return !s.CheckIn.After(other.CheckOut) && !s.CheckOut.Before(other.CheckIn)
}
