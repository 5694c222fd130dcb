package domain

// CartLine is one distinct item and its selected quantity in the current
// session's order-in-progress. Identity within a cart is Name. Quantity is
// always >= 1 for a line that exists.
type CartLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}
