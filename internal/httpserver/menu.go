package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func menuHandler(loader menuLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, err := loader.Load(c.Request.Context())
		if err != nil {
			if errors.Is(err, context.Canceled) {
				// Client went away mid-fetch; nothing to report.
				c.Abort()
				return
			}
			status, msg := upstreamError(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, catalog)
	}
}

type offer struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// The promotions section is a static teaser until a discounts feature
// exists; the order draft's discount stays zero regardless.
var offers = []offer{
	{Title: "Festival specials", Description: "Seasonal dishes at festival prices."},
	{Title: "Combo meal offers", Description: "Pair mains with sides and save."},
	{Title: "Student savings", Description: "Show a student ID at delivery."},
}

func offersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"heading": "Offers & Discount Coupons",
		"note":    "Sweet deals are cooking! A dedicated discounts section is coming soon.",
		"offers":  offers,
	})
}
