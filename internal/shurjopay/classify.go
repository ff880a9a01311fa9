package shurjopay

// Processor status codes returned on verification.
const (
	spCodeApproved = "1000"
	spCodeCanceled = "1002"
	spCodeTimeout  = "1068"
)

// OutcomeStatus is the terminal classification of a verification attempt.
type OutcomeStatus string

const (
	OutcomeApproved OutcomeStatus = "approved"
	OutcomeCanceled OutcomeStatus = "canceled"
	OutcomeFailed   OutcomeStatus = "failed"
)

// Outcome tags the result of Classify. Result is set only when Status is
// OutcomeApproved.
type Outcome struct {
	Status OutcomeStatus
	Result *VerificationResult
}

// Classify maps a raw verification response onto the outcome taxonomy.
// 1000 is approved, 1002 and 1068 are cancellations, everything else is a
// failure. The table is fixed; do not add classifications.
func Classify(v *PaymentVerification, sessionCurrency string) Outcome {
	switch string(v.SPCode) {
	case spCodeApproved:
		currency := v.Currency
		if currency == "" {
			currency = sessionCurrency
		}
		if currency == "" {
			currency = DefaultCurrency
		}

		return Outcome{
			Status: OutcomeApproved,
			Result: &VerificationResult{
				ClientID:      string(v.Value2),
				Amount:        string(v.Amount),
				Currency:      currency,
				Status:        "approved",
				ReferenceID:   v.BankTrxID,
				TransactionID: v.OrderID,
				Invoices:      DecodeInvoices(v.Value1),
			},
		}
	case spCodeCanceled, spCodeTimeout:
		return Outcome{Status: OutcomeCanceled}
	default:
		return Outcome{Status: OutcomeFailed}
	}
}
