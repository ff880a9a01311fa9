package payment

import "errors"

var (
	// ErrPaymentCanceled is the terminal outcome when the payer backed out.
	ErrPaymentCanceled = errors.New("payment was canceled")

	// ErrPaymentFailed is the terminal outcome for any non-approved,
	// non-canceled processor status.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrUnsupportedOperation is returned for capture, void and refund.
	// ShurjoPay does not support them and they are never attempted.
	ErrUnsupportedOperation = errors.New("operation not supported by this gateway")
)
