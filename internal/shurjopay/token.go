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

// GetToken exchanges the merchant credentials for a short-lived bearer
// token. Every checkout and every verification calls this fresh; tokens are
// never cached or reused across operations.
func (c *Client) GetToken(ctx context.Context) (*AuthToken, error) {
	log := logger.FromCtx(ctx).With(zap.String("store_id", c.creds.StoreID))

	body, err := json.Marshal(map[string]string{
		"username": c.creds.StoreID,
		"password": c.creds.StorePassword,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"api/get_token", bytes.NewBuffer(body))
	if err != nil {
		log.Error("Failed creating token request", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Token request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read token response body", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("Token endpoint returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("%w: status %d", ErrAuthenticationFailed, resp.StatusCode)
	}

	var token AuthToken
	if err := json.Unmarshal(bodyBytes, &token); err != nil {
		log.Error("Failed decoding token response", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	if token.Token == "" || token.StoreID == "" {
		log.Error("Token response missing token or store_id",
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("%w: incomplete token response", ErrAuthenticationFailed)
	}

	return &token, nil
}
