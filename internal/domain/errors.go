package domain

import "errors"

var (
	// ErrBackendNotConfigured indicates the ordering service base URL could
	// not be resolved from any configured source.
	ErrBackendNotConfigured = errors.New("backend URL not configured: set STOREFRONT_BACKEND_URL to the ordering service base URL and restart")

	// ErrServerUnreachable indicates the request failed at the network layer
	// before any response arrived.
	ErrServerUnreachable = errors.New("could not reach the server: ensure the ordering service is running and STOREFRONT_BACKEND_URL points to it")

	// ErrRequestTimeout indicates the request was abandoned after its
	// deadline elapsed.
	ErrRequestTimeout = errors.New("request timed out, please check your connection and try again")

	// ErrLineNotFound indicates a cart line index outside the current cart.
	ErrLineNotFound = errors.New("cart line not found")
)
