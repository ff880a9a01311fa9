package shurjopay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/10corp/shurjopay-blesta/internal/logger"
	"go.uber.org/zap"
)

// Verify asks the processor for the final status of a previously created
// order. It re-authenticates on every call; tokens from the checkout leg are
// never reused here.
func (c *Client) Verify(ctx context.Context, orderID string) (*PaymentVerification, error) {
	if orderID == "" {
		return nil, ErrMissingOrder
	}

	log := logger.FromCtx(ctx).With(zap.String("order_id", orderID))

	token, err := c.GetToken(ctx)
	if err != nil {
		log.Error("Aborting verification, token step failed", zap.Error(err))
		return nil, err
	}

	body, err := json.Marshal(map[string]string{"order_id": orderID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerification, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"api/verification/", bytes.NewBuffer(body))
	if err != nil {
		log.Error("Failed creating verification request", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrVerification, err)
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+token.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Verification request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrVerification, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read verification response body", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrVerification, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("Verification endpoint returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("%w: status %d", ErrVerification, resp.StatusCode)
	}

	var results []PaymentVerification
	if err := json.Unmarshal(bodyBytes, &results); err != nil {
		log.Error("Failed decoding verification response", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrVerification, err)
	}

	if len(results) == 0 || results[0].SPCode == "" {
		log.Error("Verification response missing sp_code",
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("%w: empty or incomplete response", ErrVerification)
	}

	log.Info("ShurjoPay verification completed",
		zap.String("sp_code", string(results[0].SPCode)),
	)

	return &results[0], nil
}
