package shurjopay

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationFailed covers any failure of the get_token step.
	ErrAuthenticationFailed = errors.New("shurjopay: authentication failed")

	// ErrMissingOrder is returned when verification is attempted without an
	// order id. No network call is made.
	ErrMissingOrder = errors.New("shurjopay: order id is required")

	// ErrVerification covers transport and parse failures during the status
	// check.
	ErrVerification = errors.New("shurjopay: verification failed")
)

// CheckoutError means the processor rejected or mishandled a checkout
// request. The raw response body is kept for diagnostics.
type CheckoutError struct {
	StatusCode int
	Body       string
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("shurjopay checkout error (status %d): %s", e.StatusCode, e.Body)
}
