package payment

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"context"
	"github.com/10corp/shurjopay-blesta/internal/logger"

	"go.uber.org/zap"
)

// Notifier tells the billing collaborator about an approved transaction so
// it can finalize the invoice sooner. Reconciliation never depends on it.
type Notifier struct {
	baseURL    string
	companyID  string
	httpClient *http.Client
}

func NewNotifier(baseURL, companyID string) *Notifier {
	return &Notifier{
		baseURL:   baseURL,
		companyID: companyID,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// BuildNotificationURL assembles {base}/{company}/shurjopay/?order_id={id},
// with order_id=null when no order id is on hand. Missing configuration is a
// hard error.
func (n *Notifier) BuildNotificationURL(orderID string) (string, error) {
	if n.baseURL == "" || n.companyID == "" {
		return "", fmt.Errorf("invalid configuration: callback base URL or company id is missing")
	}

	query := "order_id=null"
	if orderID != "" {
		query = "order_id=" + url.QueryEscape(orderID)
	}

	notification := fmt.Sprintf("%s/%s/shurjopay/?%s", strings.TrimRight(n.baseURL, "/"), n.companyID, query)

	u, err := url.ParseRequestURI(notification)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("failed to construct a valid notification URL from %q", notification)
	}
	return notification, nil
}

// Notify fires a best-effort GET at the collaborator. A malformed URL is a
// configuration error and fails the call; a network failure is logged and
// discarded, never retried.
func (n *Notifier) Notify(ctx context.Context, orderID string) error {
	log := logger.FromCtx(ctx).With(zap.String("order_id", orderID))

	target, err := n.BuildNotificationURL(orderID)
	if err != nil {
		log.Error("Refusing callback notification", zap.Error(err))
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		log.Error("Failed creating notification request", zap.Error(err))
		return fmt.Errorf("failed to construct a valid notification URL from %q", target)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Warn("Callback notification failed, collaborator will reconcile on its own", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	log.Info("Callback notification delivered",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}
