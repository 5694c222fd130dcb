package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/domain"
)

type addItemRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

type adjustItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func getCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt := carts.Get(sessionID(c))
		c.JSON(http.StatusOK, toCartResponse(crt))
	}
}

func addCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		crt := carts.Get(sessionID(c))
		crt.Add(req.Name, *req.Price)
		c.JSON(http.StatusOK, toCartResponse(crt))
	}
}

func adjustCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, ok := lineIndex(c)
		if !ok {
			return
		}
		var req adjustItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required and must be non-zero"})
			return
		}
		crt := carts.Get(sessionID(c))
		if err := crt.AdjustQuantity(index, req.Delta); err != nil {
			if errors.Is(err, domain.ErrLineNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrLineNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update the cart"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(crt))
	}
}

func removeCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, ok := lineIndex(c)
		if !ok {
			return
		}
		crt := carts.Get(sessionID(c))
		if err := crt.Remove(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrLineNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(crt))
	}
}

func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart line index"})
		return 0, false
	}
	return index, true
}
