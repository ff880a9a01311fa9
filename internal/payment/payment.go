package payment

import (
	"context"

	"github.com/10corp/shurjopay-blesta/internal/contact"
	"github.com/10corp/shurjopay-blesta/internal/shurjopay"
)

// Gateway is what the billing collaborator programs against.
type Gateway interface {
	BuildCheckout(
		ctx context.Context,
		info contact.Info,
		amount string,
		invoices []shurjopay.InvoiceRef,
		returnURL string,
		clientIP string,
	) (*shurjopay.CheckoutRedirect, error)
	VerifyReturn(ctx context.Context, orderID string) (*shurjopay.VerificationResult, error)
	Capture(ctx context.Context, referenceID, transactionID, amount string) error
	Void(ctx context.Context, referenceID, transactionID string) error
	Refund(ctx context.Context, referenceID, transactionID, amount string) error
}

// Processor is the slice of the ShurjoPay client the gateway service needs.
type Processor interface {
	CreateCheckout(ctx context.Context, p shurjopay.CheckoutParams) (*shurjopay.CheckoutRedirect, error)
	Verify(ctx context.Context, orderID string) (*shurjopay.PaymentVerification, error)
}
