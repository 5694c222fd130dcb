// Package cart holds in-memory session carts for the storefront.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// Cart is one session's order-in-progress. All methods are safe for
// concurrent use; nothing is persisted, reloads start empty by design.
type Cart struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

// Add merges an item into the cart. An existing line with the same name has
// its quantity bumped, keeping the price already on the line; otherwise a
// new line with quantity 1 appends at the tail. Relative order of other
// lines never changes.
func (c *Cart) Add(name string, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, line := range c.lines {
		if line.Name == name {
			c.lines[i].Quantity = line.Quantity + 1
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{Name: name, Price: price, Quantity: 1})
}

// AdjustQuantity applies delta to the line at index, clamping the result at
// 1. A line never leaves the cart through adjustment; Remove is the only
// way out.
func (c *Cart) AdjustQuantity(index, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.lines) {
		return domain.ErrLineNotFound
	}
	q := c.lines[index].Quantity + delta
	if q < 1 {
		q = 1
	}
	c.lines[index].Quantity = q
	return nil
}

// Remove drops the line at index; later lines shift down one place.
func (c *Cart) Remove(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.lines) {
		return domain.ErrLineNotFound
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Clear empties the cart, as after a successful order submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current lines in order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Count is the badge count: the sum of quantities across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// Totals recomputes subtotal, discount and total from the current lines on
// every call. Discount is fixed at zero; the field is carried for the wire
// contract, not computed. Total floors at zero.
func (c *Cart) Totals() domain.CartTotals {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := decimal.Zero
	for _, line := range c.lines {
		lineTotal := decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}
	discount := decimal.Zero
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return domain.CartTotals{
		Subtotal: subtotal.InexactFloat64(),
		Discount: discount.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
