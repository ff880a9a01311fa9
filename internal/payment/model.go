package payment

import "time"

// Transaction statuses recorded in the audit store.
const (
	StatusInitiated = "initiated"
	StatusApproved  = "approved"
	StatusCanceled  = "canceled"
	StatusFailed    = "failed"
)

// Transaction is the durable audit record of one checkout attempt and its
// eventual outcome.
type Transaction struct {
	ID          int64
	OrderID     string
	ClientID    string
	Amount      string
	Currency    string
	Status      string
	InvoiceLine string
	ReferenceID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
