package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/domain"
)

// menuLoader is the slice of the catalog loader the routes need.
type menuLoader interface {
	Load(ctx context.Context) ([]domain.CatalogCategory, error)
}

// orderSubmitter is the slice of the checkout submitter the routes need.
type orderSubmitter interface {
	Submit(ctx context.Context, sessionID string, lines []domain.CartLine, totals domain.CartTotals, in checkout.Input) (json.RawMessage, error)
}

// Deps carries the wired components.
type Deps struct {
	Loader    menuLoader
	Carts     *cart.Store
	Submitter orderSubmitter
	// BackendBase is the resolved ordering service base URL, empty when
	// unresolved; readiness reports on it.
	BackendBase string
}

// Options tunes the HTTP surface.
type Options struct {
	SessionTTL time.Duration
	// CORSAllowOrigins lists browser origins allowed to call the API with
	// the session cookie. Empty allows any origin without credentials.
	CORSAllowOrigins []string
}

// buildRouter wires routes for the storefront.
func buildRouter(logger *zap.Logger, deps Deps, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), corsMiddleware(opts))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.BackendBase))

	api := router.Group("/api", sessionMiddleware(opts.SessionTTL))
	{
		api.GET("/menu", menuHandler(deps.Loader))
		api.GET("/offers", offersHandler)
		api.GET("/cart", getCartHandler(deps.Carts))
		api.POST("/cart/items", addCartItemHandler(deps.Carts))
		api.PATCH("/cart/items/:index", adjustCartItemHandler(deps.Carts))
		api.DELETE("/cart/items/:index", removeCartItemHandler(deps.Carts))
		api.POST("/checkout", checkoutHandler(deps.Carts, deps.Submitter))
	}

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func corsMiddleware(opts Options) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}
	cfg.AllowHeaders = []string{"Origin", "Content-Type"}
	if len(opts.CORSAllowOrigins) > 0 {
		cfg.AllowOrigins = opts.CORSAllowOrigins
		cfg.AllowCredentials = true
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(backendBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if backendBase == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "backend not configured"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "backend": backendBase})
	}
}
