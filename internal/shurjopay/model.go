package shurjopay

import "encoding/json"

// Credentials identify one merchant against the processor. Sensitive fields
// are stored encrypted at rest by the settings store and only live in memory
// here.
type Credentials struct {
	StoreID       string
	StorePassword string
	StorePrefix   string
	DevMode       bool
}

// AuthToken is the short-lived bearer credential returned by get_token. It is
// fetched fresh for every operation and never cached.
type AuthToken struct {
	Token   string `json:"token"`
	StoreID string `json:"store_id"`
}

// InvoiceRef is one (invoice id, amount) pair carried through the processor
// as an opaque pass-through field.
type InvoiceRef struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
}

// Customer is the payer profile sent with a checkout request.
type Customer struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	City     string
	State    string
	Postcode string
	Country  string
}

// CheckoutParams is everything the caller supplies to open a hosted checkout.
type CheckoutParams struct {
	Amount    string
	Currency  string
	Customer  Customer
	Invoices  []InvoiceRef
	ReturnURL string
	ClientID  string
	ClientIP  string
}

// checkoutRequest is the wire shape of api/secret-pay.
type checkoutRequest struct {
	Token           string `json:"token"`
	StoreID         string `json:"store_id"`
	Currency        string `json:"currency"`
	ReturnURL       string `json:"return_url"`
	CancelURL       string `json:"cancel_url"`
	Amount          string `json:"amount"`
	Prefix          string `json:"prefix"`
	OrderID         string `json:"order_id"`
	DiscountAmount  int    `json:"discount_amount"`
	DiscountPercent int    `json:"disc_percent"`
	ClientIP        string `json:"client_ip"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	CustomerAddress string `json:"customer_address"`
	CustomerCity    string `json:"customer_city"`
	CustomerState   string `json:"customer_state"`
	CustomerPost    string `json:"customer_postcode"`
	CustomerCountry string `json:"customer_country"`
	Value1          string `json:"value1"`
	Value2          string `json:"value2"`
	Value3          string `json:"value3"`
	Value4          string `json:"value4"`
}

// CheckoutRedirect is the hosted checkout target the payer is sent to.
type CheckoutRedirect struct {
	CheckoutURL string `json:"checkout_url"`
	OrderID     string `json:"order_id"`
}

// looseString tolerates the processor returning a field either as a JSON
// string or as a bare number.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	if string(b) == "null" {
		*s = ""
		return nil
	}
	*s = looseString(b)
	return nil
}

// PaymentVerification is one element of the api/verification/ response.
type PaymentVerification struct {
	SPCode    looseString `json:"sp_code"`
	Amount    looseString `json:"amount"`
	Currency  string      `json:"currency"`
	BankTrxID string      `json:"bank_trx_id"`
	OrderID   string      `json:"order_id"`
	Value1    string      `json:"value1"`
	Value2    looseString `json:"value2"`
}

// VerificationResult is the normalized view of an approved transaction,
// handed to the billing collaborator for reconciliation.
type VerificationResult struct {
	ClientID      string       `json:"client_id"`
	Amount        string       `json:"amount"`
	Currency      string       `json:"currency"`
	Status        string       `json:"status"`
	ReferenceID   string       `json:"reference_id"`
	TransactionID string       `json:"transaction_id"`
	Invoices      []InvoiceRef `json:"invoices"`
}
