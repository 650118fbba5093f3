package services

import "errors"

// Typed errors raised by the service layer. Handlers match on these with
// errors.Is to pick response codes; the services never retry on their own.
var (
	// ErrInvalidRequest covers malformed input: an empty item list or a
	// non-positive quantity.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUserNotFound is returned when an order references a user that
	// does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when a line item references a
	// product absent from the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductUnavailable is returned when a line item references a
	// product that exists but is currently disabled.
	ErrProductUnavailable = errors.New("product unavailable")

	// ErrStorageUnavailable wraps storage-layer failures. These are not
	// client errors and are surfaced distinctly so the boundary can map
	// them to a server error.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrEmailTaken is returned on signup when the email is already
	// registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure. It deliberately
	// does not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
