package ordering

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"storefront/internal/domain"
)

func newTestClient(base string, submitTimeout time.Duration) *Client {
	return New(base, zap.NewNop(), 5*time.Second, submitTimeout)
}

func TestFetchCatalogSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/products" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"category":"Snacks","items":[{"name":"Fries","price":99.5}]},{"category":"Mains","items":[]}]`))
	}))
	defer srv.Close()

	catalog, err := newTestClient(srv.URL, time.Second).FetchCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog) != 2 || catalog[0].Category != "Snacks" || catalog[1].Category != "Mains" {
		t.Fatalf("unexpected catalog %+v", catalog)
	}
	if len(catalog[0].Items) != 1 || catalog[0].Items[0].Name != "Fries" || catalog[0].Items[0].Price != 99.5 {
		t.Fatalf("unexpected items %+v", catalog[0].Items)
	}
}

func TestFetchCatalogServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).FetchCatalog(context.Background())
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusServiceUnavailable || se.Message != "failed to load menu (503)" {
		t.Fatalf("unexpected status error %+v", se)
	}
}

func TestFetchCatalogUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL, time.Second).FetchCatalog(context.Background())
	if !errors.Is(err, domain.ErrServerUnreachable) {
		t.Fatalf("expected unreachable error, got %v", err)
	}
}

func TestFetchCatalogCancellationPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := newTestClient(srv.URL, time.Second).FetchCatalog(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected caller cancellation, got %v", err)
	}
}

func TestUnconfiguredBase(t *testing.T) {
	c := newTestClient("", time.Second)
	if _, err := c.FetchCatalog(context.Background()); !errors.Is(err, domain.ErrBackendNotConfigured) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if _, err := c.PlaceOrder(context.Background(), domain.OrderDraft{}); !errors.Is(err, domain.ErrBackendNotConfigured) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	var received domain.OrderDraft
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode draft: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ord-1","status":"placed"}`))
	}))
	defer srv.Close()

	draft := domain.OrderDraft{
		CustomerName:  "Asha",
		ContactNumber: "9999999999",
		PaymentMethod: domain.PaymentCOD,
		Items:         []domain.CartLine{{Name: "Burger", Price: 150, Quantity: 2}},
		Subtotal:      300,
		Total:         300,
	}
	confirmed, err := newTestClient(srv.URL, time.Second).PlaceOrder(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received.Subtotal != 300 || received.Total != 300 || received.Discount != 0 {
		t.Fatalf("unexpected totals in draft %+v", received)
	}
	if len(received.Items) != 1 || received.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items in draft %+v", received.Items)
	}

	var out map[string]string
	if err := json.Unmarshal(confirmed, &out); err != nil {
		t.Fatalf("confirmed order not passed through: %v", err)
	}
	if out["id"] != "ord-1" {
		t.Fatalf("unexpected confirmed order %v", out)
	}
}

func TestPlaceOrderServiceErrorBodyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("invalid contact number"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).PlaceOrder(context.Background(), domain.OrderDraft{})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Message != "invalid contact number" {
		t.Fatalf("expected body text surfaced, got %q", se.Message)
	}
}

func TestPlaceOrderServiceErrorEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).PlaceOrder(context.Background(), domain.OrderDraft{})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Message != "order failed (500)" {
		t.Fatalf("expected generic message with status, got %q", se.Message)
	}
}

func TestPlaceOrderTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client hanging up and
		// cancels the request context; otherwise Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	start := time.Now()
	_, err := newTestClient(srv.URL, 50*time.Millisecond).PlaceOrder(context.Background(), domain.OrderDraft{})
	if !errors.Is(err, domain.ErrRequestTimeout) {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("timeout took too long: %v", elapsed)
	}
}
