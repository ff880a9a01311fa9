package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/10corp/shurjopay-blesta/internal/contact"
	"github.com/10corp/shurjopay-blesta/internal/logger"
	"github.com/10corp/shurjopay-blesta/internal/payment"
	"github.com/10corp/shurjopay-blesta/internal/shurjopay"
	"github.com/10corp/shurjopay-blesta/internal/transport"
	"go.uber.org/zap"
)

// Handler exposes the gateway to the billing collaborator as plain JSON over
// HTTP: checkout initiation plus the return and cancel legs of the redirect
// chain.
type Handler struct {
	Gateway payment.Gateway
}

func NewHandler(gw payment.Gateway) *Handler {
	return &Handler{Gateway: gw}
}

type numberPayload struct {
	Number   string `json:"number"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

type invoicePayload struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
}

type checkoutPayload struct {
	ClientID  string           `json:"client_id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email"`
	Address1  string           `json:"address1"`
	Address2  string           `json:"address2"`
	City      string           `json:"city"`
	State     string           `json:"state"`
	Zip       string           `json:"zip"`
	Country   string           `json:"country"`
	Numbers   []numberPayload  `json:"numbers"`
	Amount    string           `json:"amount"`
	Invoices  []invoicePayload `json:"invoices"`
	ReturnURL string           `json:"return_url"`
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"status": "error", "message": message})
}

// genericRetryMessage is shown for token and API failures, deliberately
// distinct from the cancellation message.
const genericRetryMessage = "Payment service is unavailable, please try again or contact support"

const dashboardRetryMessage = "Return to your dashboard to retry the payment"

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// Checkout initiates a hosted checkout and returns the redirect target.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := transport.WithClientInfo(r.Context(), r)
	log := logger.FromCtx(ctx)

	var payload checkoutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	defer r.Body.Close()

	if payload.Amount == "" {
		writeError(w, http.StatusBadRequest, "amount is required")
		return
	}

	info := contact.Info{
		ClientID:  payload.ClientID,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Address1:  payload.Address1,
		Address2:  payload.Address2,
		City:      payload.City,
		State:     payload.State,
		Zip:       payload.Zip,
		Country:   payload.Country,
	}
	for _, n := range payload.Numbers {
		info.Numbers = append(info.Numbers, contact.Number{
			Number:   n.Number,
			Type:     n.Type,
			Location: n.Location,
		})
	}

	invoices := make([]shurjopay.InvoiceRef, 0, len(payload.Invoices))
	for _, inv := range payload.Invoices {
		invoices = append(invoices, shurjopay.InvoiceRef{ID: inv.ID, Amount: inv.Amount})
	}

	redirect, err := h.Gateway.BuildCheckout(ctx, info, payload.Amount, invoices,
		payload.ReturnURL, transport.ClientIP(ctx))
	if err != nil {
		log.Error("Checkout initiation failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, genericRetryMessage)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"checkout_url": redirect.CheckoutURL,
		"order_id":     redirect.OrderID,
	})
}

// Return handles the success leg of the processor redirect: verify the
// order, classify the outcome and report it to the payer.
func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	ctx := transport.WithClientInfo(r.Context(), r)
	log := logger.FromCtx(ctx)

	orderID := r.URL.Query().Get("order_id")

	result, err := h.Gateway.VerifyReturn(ctx, orderID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "approved",
			"result": result,
		})

	case errors.Is(err, shurjopay.ErrMissingOrder):
		writeError(w, http.StatusBadRequest, "order_id is required")

	case errors.Is(err, payment.ErrPaymentCanceled):
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "canceled",
			"message": dashboardRetryMessage,
		})

	case errors.Is(err, payment.ErrPaymentFailed):
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "failed",
			"message": dashboardRetryMessage,
		})

	default:
		log.Error("Verification failed", zap.Error(err), zap.String("order_id", orderID))
		writeError(w, http.StatusBadGateway, genericRetryMessage)
	}
}

// Cancel handles the cancel leg of the redirect chain. Nothing to verify;
// the payer simply backed out before paying.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "canceled",
		"message": dashboardRetryMessage,
	})
}
