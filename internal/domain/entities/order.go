package entities

// CurrencyINR is the only currency orders are issued in.
const CurrencyINR = "INR"

// OrderNotes is the free-form metadata attached to a gateway order.
type OrderNotes struct {
	BookID    string `json:"bookId"`
	BookTitle string `json:"bookTitle"`
}

// OrderRequest is what the Order Issuer sends to the gateway.
//
// Amount is expressed in the gateway's minor unit (paise).
type OrderRequest struct {
	Amount   int64      `json:"amount"`
	Currency string     `json:"currency"`
	Receipt  string     `json:"receipt"`
	Notes    OrderNotes `json:"notes"`
}

// Order is the gateway's order record, echoed back to the caller as-is.
//
// The gateway is the only source of truth for orders: nothing here is
// persisted by this service.
type Order struct {
	ID         string     `json:"id"`
	Entity     string     `json:"entity,omitempty"`
	Amount     int64      `json:"amount"`
	AmountPaid int64      `json:"amount_paid"`
	AmountDue  int64      `json:"amount_due"`
	Currency   string     `json:"currency"`
	Receipt    string     `json:"receipt"`
	Status     string     `json:"status,omitempty"`
	Attempts   int        `json:"attempts"`
	Notes      OrderNotes `json:"notes"`
	CreatedAt  int64      `json:"created_at,omitempty"`
}
