// Package ordering is the HTTP client of the remote ordering service.
package ordering

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront/internal/domain"
)

// StatusError reports a non-success HTTP status from the ordering service.
// Message carries the response body text when the service sent one.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

// Client talks to the ordering service at a resolved base URL. An empty base
// means the locator could not resolve one; every call then fails with
// domain.ErrBackendNotConfigured without touching the network.
type Client struct {
	base          string
	http          *http.Client
	logger        *zap.Logger
	submitTimeout time.Duration
}

func New(base string, logger *zap.Logger, requestTimeout, submitTimeout time.Duration) *Client {
	return &Client{
		base:          strings.TrimSuffix(base, "/"),
		http:          &http.Client{Timeout: requestTimeout},
		logger:        logger,
		submitTimeout: submitTimeout,
	}
}

// Base returns the resolved base URL, empty when unresolved.
func (c *Client) Base() string { return c.base }

// FetchCatalog issues GET {base}/products and decodes the categorized menu.
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.CatalogCategory, error) {
	if c.base == "" {
		return nil, domain.ErrBackendNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, c.mapTransportError(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{
			Status:  res.StatusCode,
			Message: fmt.Sprintf("failed to load menu (%d)", res.StatusCode),
		}
	}

	var catalog []domain.CatalogCategory
	if err := json.NewDecoder(res.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog, nil
}

// PlaceOrder issues POST {base}/orders with the draft as JSON, bounded by
// the submit timeout measured from request start. On a 2xx status the
// confirmed order body is returned opaquely for the caller to pass through.
func (c *Client) PlaceOrder(ctx context.Context, draft domain.OrderDraft) (json.RawMessage, error) {
	if c.base == "" {
		return nil, domain.ErrBackendNotConfigured
	}

	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encode order draft: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, c.mapTransportError(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		text, _ := io.ReadAll(res.Body)
		msg := strings.TrimSpace(string(text))
		if msg == "" {
			msg = fmt.Sprintf("order failed (%d)", res.StatusCode)
		}
		return nil, &StatusError{Status: res.StatusCode, Message: msg}
	}

	var confirmed json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&confirmed); err != nil {
		return nil, fmt.Errorf("decode confirmed order: %w", err)
	}
	return confirmed, nil
}

// mapTransportError sorts request failures into the error taxonomy. Caller
// cancellation passes through untouched so it can be swallowed upstream.
func (c *Client) mapTransportError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ErrRequestTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return domain.ErrRequestTimeout
	}
	c.logger.Warn("ordering service unreachable", zap.Error(err))
	return fmt.Errorf("%w: %v", domain.ErrServerUnreachable, err)
}
