package shurjopay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/10corp/shurjopay-blesta/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FormatAmount renders an amount as a fixed 2-decimal string. No currency
// rounding happens beyond that.
func FormatAmount(amount string) (string, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return d.StringFixed(2), nil
}

// sanitizeReturnURL strips the client_id query key and reassembles
// scheme://host/path[?query][#fragment]. Forwarding client_id to the
// processor would let it leak back through the redirect chain. An unparsable
// URL falls back to the configured default.
func (c *Client) sanitizeReturnURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return c.fallbackReturnURL
	}

	q := u.Query()
	q.Del("client_id")
	u.RawQuery = q.Encode()

	return strings.TrimSpace(u.String())
}

// ----------------- CreateCheckout -----------------

// CreateCheckout opens a hosted checkout session and returns the redirect
// target for the payer. The token step runs first; if it fails no checkout
// request is sent.
func (c *Client) CreateCheckout(ctx context.Context, p CheckoutParams) (*CheckoutRedirect, error) {
	orderID := c.NewOrderID()

	log := logger.FromCtx(ctx).With(
		zap.String("order_id", orderID),
		zap.String("client_id", p.ClientID),
		zap.String("amount", p.Amount),
	)

	amount, err := FormatAmount(p.Amount)
	if err != nil {
		log.Error("Rejecting checkout with bad amount", zap.Error(err))
		return nil, err
	}

	token, err := c.GetToken(ctx)
	if err != nil {
		log.Error("Aborting checkout, token step failed", zap.Error(err))
		return nil, err
	}

	currency := p.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	returnURL := c.sanitizeReturnURL(p.ReturnURL)

	body := checkoutRequest{
		Token:           token.Token,
		StoreID:         token.StoreID,
		Currency:        currency,
		ReturnURL:       returnURL,
		CancelURL:       returnURL,
		Amount:          amount,
		Prefix:          c.creds.StorePrefix,
		OrderID:         orderID,
		ClientIP:        p.ClientIP,
		CustomerName:    p.Customer.Name,
		CustomerPhone:   p.Customer.Phone,
		CustomerEmail:   p.Customer.Email,
		CustomerAddress: p.Customer.Address,
		CustomerCity:    p.Customer.City,
		CustomerState:   p.Customer.State,
		CustomerPost:    p.Customer.Postcode,
		CustomerCountry: p.Customer.Country,
		Value1:          EncodeInvoices(p.Invoices),
		Value2:          p.ClientID,
		Value3:          "value3",
		Value4:          "value4",
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal checkout request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"api/secret-pay", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating checkout request", zap.Error(err))
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+token.Token)

	log.Info("Sending checkout request to ShurjoPay")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Checkout request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read checkout response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read shurjopay response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("ShurjoPay returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, &CheckoutError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var res struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding checkout response", zap.Error(err))
		return nil, &CheckoutError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if res.CheckoutURL == "" {
		log.Error("Checkout response missing checkout_url",
			zap.ByteString("response", bodyBytes),
		)
		return nil, &CheckoutError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	log.Info("ShurjoPay checkout created",
		zap.String("checkout_url", res.CheckoutURL),
	)

	return &CheckoutRedirect{CheckoutURL: res.CheckoutURL, OrderID: orderID}, nil
}
