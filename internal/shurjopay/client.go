package shurjopay

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/10corp/shurjopay-blesta/internal/logger"
	"github.com/google/uuid"
)

const (
	productionBaseURL = "https://www.engine.shurjopayment.com/"
	sandboxBaseURL    = "https://www.sandbox.shurjopayment.com/"

	// DefaultCurrency applies when neither the caller nor the processor
	// supplies one.
	DefaultCurrency = "BDT"
)

// Client talks to the ShurjoPay processor. Each operation authenticates
// fresh and runs as a single blocking round trip; the client keeps no state
// between calls.
type Client struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client

	// fallbackReturnURL is used when a caller-supplied return URL cannot be
	// parsed.
	fallbackReturnURL string
}

// ----------------- Constructor -----------------

func NewClient(creds Credentials) *Client {
	if creds.StoreID == "" || creds.StorePassword == "" {
		logger.L().Warn("ShurjoPay store credentials are empty")
	}

	baseURL := productionBaseURL
	if creds.DevMode {
		baseURL = sandboxBaseURL
	}

	return &Client{
		creds:   creds,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		fallbackReturnURL: os.Getenv("DEFAULT_RETURN_URL"),
	}
}

// BaseURL reports the endpoint root selected by the dev_mode flag.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewOrderID builds a merchant order id: store prefix plus a process-unique
// nonce. Uniqueness within the processor namespace is assumed; there is no
// collision retry.
func (c *Client) NewOrderID() string {
	nonce := strings.ReplaceAll(uuid.New().String(), "-", "")[:13]
	return c.creds.StorePrefix + nonce
}
