package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/checkout"
)

const orderPlacedNotice = "Order placed! We'll contact you shortly."

func checkoutHandler(carts *cart.Store, submitter orderSubmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkout.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
			return
		}

		crt := carts.Get(sessionID(c))
		confirmed, err := submitter.Submit(c.Request.Context(), sessionID(c), crt.Lines(), crt.Totals(), in)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrMissingContact),
				errors.Is(err, checkout.ErrEmptyCart),
				errors.Is(err, checkout.ErrInvalidPaymentMethod):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, checkout.ErrSubmissionInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, context.Canceled):
				c.Abort()
			default:
				status, msg := upstreamError(err)
				c.JSON(status, gin.H{"error": msg})
			}
			// The cart stays as it was so the customer can retry.
			return
		}

		crt.Clear()
		c.JSON(http.StatusOK, gin.H{
			"message": orderPlacedNotice,
			"order":   confirmed,
			"cart":    toCartResponse(crt),
		})
	}
}
