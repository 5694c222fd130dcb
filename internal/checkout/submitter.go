// Package checkout validates and submits orders to the ordering service.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"storefront/internal/domain"
)

// Validation failures are local: none of these ever issue a network call.
var (
	ErrMissingContact       = errors.New("please enter your name and contact number")
	ErrEmptyCart            = errors.New("your cart is empty")
	ErrInvalidPaymentMethod = errors.New("payment method must be COD or UPI")
	ErrSubmissionInFlight   = errors.New("an order submission is already in progress")
)

// Input is what the customer typed into the checkout form.
type Input struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Method string `json:"method"`
	Note   string `json:"note"`
}

// OrderPlacer is the slice of the ordering client the submitter needs.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, draft domain.OrderDraft) (json.RawMessage, error)
}

// Submitter assembles an order draft from the session cart and places it,
// allowing at most one submission in flight per session. It never mutates
// the cart: on success the caller clears it, on failure the caller leaves
// cart and form untouched so the customer can retry.
type Submitter struct {
	client OrderPlacer
	logger *zap.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func New(client OrderPlacer, logger *zap.Logger) *Submitter {
	return &Submitter{
		client:   client,
		logger:   logger,
		inflight: make(map[string]struct{}),
	}
}

// Submit validates, builds the draft and posts it. The returned payload is
// the confirmed order record, passed through opaquely.
func (s *Submitter) Submit(ctx context.Context, sessionID string, lines []domain.CartLine, totals domain.CartTotals, in Input) (json.RawMessage, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, ErrMissingContact
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	method, err := paymentMethod(in.Method)
	if err != nil {
		return nil, err
	}

	if !s.begin(sessionID) {
		return nil, ErrSubmissionInFlight
	}
	defer s.end(sessionID)

	draft := domain.OrderDraft{
		CustomerName:  in.Name,
		ContactNumber: in.Phone,
		PaymentMethod: method,
		Items:         lines,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Total:         totals.Total,
		Notes:         in.Note,
	}

	confirmed, err := s.client.PlaceOrder(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.logger.Info("order placed",
		zap.String("payment_method", method),
		zap.Int("lines", len(lines)),
		zap.Float64("total", totals.Total),
	)
	return confirmed, nil
}

func paymentMethod(raw string) (string, error) {
	m := strings.ToUpper(strings.TrimSpace(raw))
	switch m {
	case "":
		return domain.PaymentCOD, nil
	case domain.PaymentCOD, domain.PaymentUPI:
		return m, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (s *Submitter) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return false
	}
	s.inflight[sessionID] = struct{}{}
	return true
}

func (s *Submitter) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, sessionID)
}
