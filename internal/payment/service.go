package payment

import (
	"context"
	"fmt"

	"github.com/10corp/shurjopay-blesta/internal/contact"
	"github.com/10corp/shurjopay-blesta/internal/logger"
	"github.com/10corp/shurjopay-blesta/internal/shurjopay"
	"go.uber.org/zap"
)

type service struct {
	processor Processor
	repo      Repository
	notifier  *Notifier
	currency  string
}

// NewService wires the processor client, the audit store and the callback
// notifier into the collaborator-facing gateway.
func NewService(processor Processor, repo Repository, notifier *Notifier, currency string) Gateway {
	if currency == "" {
		currency = shurjopay.DefaultCurrency
	}
	return &service{
		processor: processor,
		repo:      repo,
		notifier:  notifier,
		currency:  currency,
	}
}

// orDefault preserves the original gateway behavior of substituting filler
// values for absent customer fields rather than guessing at processor-side
// validation.
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (s *service) BuildCheckout(
	ctx context.Context,
	info contact.Info,
	amount string,
	invoices []shurjopay.InvoiceRef,
	returnURL string,
	clientIP string,
) (*shurjopay.CheckoutRedirect, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("client_id", info.ClientID),
		zap.String("amount", amount),
	)

	params := shurjopay.CheckoutParams{
		Amount:   amount,
		Currency: s.currency,
		Customer: shurjopay.Customer{
			Name:     info.FullName(),
			Phone:    info.PrimaryPhone(),
			Email:    info.Email,
			Address:  info.Address(),
			City:     orDefault(info.City, "no city"),
			State:    orDefault(info.State, "no state"),
			Postcode: orDefault(info.Zip, "no zip"),
			Country:  orDefault(info.Country, "no country"),
		},
		Invoices:  invoices,
		ReturnURL: returnURL,
		ClientID:  info.ClientID,
		ClientIP:  clientIP,
	}

	redirect, err := s.processor.CreateCheckout(ctx, params)
	if err != nil {
		log.Error("Checkout attempt failed", zap.Error(err))
		return nil, err
	}

	tx := &Transaction{
		OrderID:     redirect.OrderID,
		ClientID:    info.ClientID,
		Amount:      amount,
		Currency:    s.currency,
		Status:      StatusInitiated,
		InvoiceLine: shurjopay.EncodeInvoices(invoices),
	}
	if err := s.repo.SaveTransaction(ctx, tx); err != nil {
		log.Error("Failed recording checkout attempt", zap.Error(err))
		return nil, fmt.Errorf("record checkout attempt: %w", err)
	}

	log.Info("Checkout attempt recorded",
		zap.String("order_id", redirect.OrderID),
		zap.String("checkout_url", redirect.CheckoutURL),
	)

	return redirect, nil
}

func (s *service) VerifyReturn(ctx context.Context, orderID string) (*shurjopay.VerificationResult, error) {
	log := logger.FromCtx(ctx).With(zap.String("order_id", orderID))

	raw, err := s.processor.Verify(ctx, orderID)
	if err != nil {
		return nil, err
	}

	outcome := shurjopay.Classify(raw, s.currency)

	switch outcome.Status {
	case shurjopay.OutcomeApproved:
		// The collaborator is the system of record for what happens next;
		// the notification only accelerates its status sync.
		if err := s.notifier.Notify(ctx, orderID); err != nil {
			return nil, err
		}
		if err := s.repo.UpdateOutcome(ctx, orderID, StatusApproved, outcome.Result.ReferenceID); err != nil {
			log.Error("Failed recording approved outcome", zap.Error(err))
		}
		return outcome.Result, nil

	case shurjopay.OutcomeCanceled:
		if err := s.repo.UpdateOutcome(ctx, orderID, StatusCanceled, ""); err != nil {
			log.Error("Failed recording canceled outcome", zap.Error(err))
		}
		return nil, ErrPaymentCanceled

	default:
		if err := s.repo.UpdateOutcome(ctx, orderID, StatusFailed, ""); err != nil {
			log.Error("Failed recording failed outcome", zap.Error(err))
		}
		return nil, ErrPaymentFailed
	}
}

func (s *service) Capture(ctx context.Context, referenceID, transactionID, amount string) error {
	return ErrUnsupportedOperation
}

func (s *service) Void(ctx context.Context, referenceID, transactionID string) error {
	return ErrUnsupportedOperation
}

func (s *service) Refund(ctx context.Context, referenceID, transactionID, amount string) error {
	return ErrUnsupportedOperation
}
