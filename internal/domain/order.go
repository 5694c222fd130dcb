package domain

// Payment method labels recorded on the order. Neither is processed by this
// system; the remote ordering service interprets them.
const (
	PaymentCOD = "COD"
	PaymentUPI = "UPI"
)

// OrderDraft is the payload posted to the remote ordering service. It is
// assembled at submission time from the session cart and never retained.
type OrderDraft struct {
	CustomerName  string     `json:"customer_name"`
	ContactNumber string     `json:"contact_number"`
	PaymentMethod string     `json:"payment_method"`
	Items         []CartLine `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Discount      float64    `json:"discount"`
	Total         float64    `json:"total"`
	Notes         string     `json:"notes"`
}
