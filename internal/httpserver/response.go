package httpserver

import (
	"errors"
	"net/http"

	"storefront/internal/cart"
	"storefront/internal/domain"
	"storefront/internal/ordering"
)

type cartResponse struct {
	Items []domain.CartLine `json:"items"`
	domain.CartTotals
	Count int `json:"count"`
}

func toCartResponse(crt *cart.Cart) cartResponse {
	return cartResponse{Items: crt.Lines(), CartTotals: crt.Totals(), Count: crt.Count()}
}

// upstreamError maps a failure from the ordering client onto an HTTP status
// and a user-facing message.
func upstreamError(err error) (int, string) {
	var se *ordering.StatusError
	switch {
	case errors.Is(err, domain.ErrBackendNotConfigured):
		return http.StatusServiceUnavailable, domain.ErrBackendNotConfigured.Error()
	case errors.Is(err, domain.ErrRequestTimeout):
		return http.StatusGatewayTimeout, domain.ErrRequestTimeout.Error()
	case errors.Is(err, domain.ErrServerUnreachable):
		return http.StatusBadGateway, domain.ErrServerUnreachable.Error()
	case errors.As(err, &se):
		return http.StatusBadGateway, se.Message
	default:
		return http.StatusInternalServerError, "something went wrong, please try again"
	}
}
