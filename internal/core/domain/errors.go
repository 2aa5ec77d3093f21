package domain

import "errors"

var (
	// ErrUserNotFound means a lookup matched no row. Client-visible absence,
	// not a server fault.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken means an insert was silently skipped because the email
	// already exists. The storage layer reports it by returning no row; the
	// repository translates that absence into this error.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidUserID means a primary-key lookup received a malformed
	// identity token. Raised before any storage round-trip.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrUnknownField means a dynamic lookup referenced a column outside the
	// allow-list. Raised before any storage round-trip.
	ErrUnknownField = errors.New("unknown query field")

	// ErrStorageUnavailable wraps connection, pool, and network failures.
	// The only class a caller may retry with backoff.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPasscode    = errors.New("invalid or expired passcode")

	// ErrNotImplemented marks surface that is reserved but has no write path
	// yet (stored users carry no mutation operations).
	ErrNotImplemented = errors.New("operation not implemented")
)
