package bookings

import (
	"errors"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuthentication
	KindAuthorization
	KindConflict
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a rejection that callers are expected to report back to the
// client as is. Infrastructure failures are never wrapped in Error.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches errors by message so that wrapped copies still compare equal
// to the sentinels below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

var (
	ErrNotAuthenticated = &Error{Kind: KindAuthentication, Message: "not authenticated"}
	ErrNotAuthorized    = &Error{Kind: KindAuthorization, Message: "not authorized"}
	ErrSelfBooking      = &Error{Kind: KindAuthorization, Message: "self-booking forbidden"}

	ErrCheckInInPast           = &Error{Kind: KindValidation, Message: "check-in in past"}
	ErrCheckOutNotAfterCheckIn = &Error{Kind: KindValidation, Message: "check-out not after check-in"}
	ErrInvalidGuests           = &Error{Kind: KindValidation, Message: "guests must be at least 1"}
	ErrTooManyGuests           = &Error{Kind: KindValidation, Message: "too many guests"}
	ErrTotalPriceOutOfRange    = &Error{Kind: KindValidation, Message: "total price out of range"}

	ErrDateRangeUnavailable = &Error{Kind: KindConflict, Message: "date range unavailable"}
	ErrBookingCancelled     = &Error{Kind: KindConflict, Message: "booking is cancelled"}

	ErrListingNotFound = &Error{Kind: KindNotFound, Message: "listing not found"}
	ErrBookingNotFound = &Error{Kind: KindNotFound, Message: "booking not found"}
)

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or 0 when err
// is not a domain rejection.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
