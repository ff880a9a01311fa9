package main

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/10corp/shurjopay-blesta/internal/api"
	"github.com/10corp/shurjopay-blesta/internal/config"
	"github.com/10corp/shurjopay-blesta/internal/contact"
	"github.com/10corp/shurjopay-blesta/internal/payment"
	"github.com/10corp/shurjopay-blesta/internal/shurjopay"

	"github.com/stretchr/testify/assert"
)

// --- Mock Driver for Testing ---
type mockDriver struct{}
type mockConn struct{}
type mockStmt struct{}

func (m *mockDriver) Open(name string) (driver.Conn, error)         { return &mockConn{}, nil }
func (c *mockConn) Prepare(query string) (driver.Stmt, error)       { return &mockStmt{}, nil }
func (c *mockConn) Close() error                                    { return nil }
func (c *mockConn) Begin() (driver.Tx, error)                       { return nil, nil }
func (s *mockStmt) Close() error                                    { return nil }
func (s *mockStmt) NumInput() int                                   { return 0 }
func (s *mockStmt) Exec(args []driver.Value) (driver.Result, error) { return nil, nil }
func (s *mockStmt) Query(args []driver.Value) (driver.Rows, error)  { return nil, nil }

func init() {
	sql.Register("mock_driver_main", &mockDriver{})
}

func TestSetupRouter(t *testing.T) {
	// An empty gateway is enough; we only test the HTTP wiring here.
	router := setupRouter(api.NewHandler(&nopGateway{}))

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "127.0.0.1:1000"
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
	})

	t.Run("Cancel Leg", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/cancel", nil)
		req.RemoteAddr = "127.0.0.2:1000"
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "canceled")
	})

	t.Run("Method Not Allowed", func(t *testing.T) {
		req, _ := http.NewRequest("DELETE", "/checkout", nil)
		req.RemoteAddr = "127.0.0.3:1000"
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestNewServer(t *testing.T) {
	db, err := sql.Open("mock_driver_main", "")
	assert.NoError(t, err)

	cfg := &config.Config{
		AppPort:         "8080",
		AppEnv:          "test",
		StoreID:         "store-1",
		StorePassword:   "store-secret",
		StorePrefix:     "SP",
		CallbackBaseURL: "https://billing.example.com/callback",
		CompanyID:       "1",
	}

	router := newServer(cfg, db)
	assert.NotNil(t, router)

	req, _ := http.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "127.0.0.4:1000"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRun(t *testing.T) {
	origInitDB := initDBFunc
	defer func() { initDBFunc = origInitDB }()
	initDBFunc = func(cfg *config.Config) *sql.DB {
		db, _ := sql.Open("mock_driver_main", "")
		return db
	}

	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()
	startServerFunc = func(addr string, handler http.Handler) error {
		return nil
	}

	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("SHURJOPAY_STORE_ID", "store-1")
	t.Setenv("SHURJOPAY_STORE_PASSWORD", "store-secret")
	t.Setenv("SHURJOPAY_STORE_PREFIX", "SP")
	t.Setenv("GW_CALLBACK_URL", "https://billing.example.com/callback")
	t.Setenv("COMPANY_ID", "1")

	assert.NoError(t, run())
}

// nopGateway satisfies payment.Gateway for routing tests.
type nopGateway struct{}

func (n *nopGateway) BuildCheckout(ctx context.Context, info contact.Info, amount string, invoices []shurjopay.InvoiceRef, returnURL, clientIP string) (*shurjopay.CheckoutRedirect, error) {
	return &shurjopay.CheckoutRedirect{}, nil
}

func (n *nopGateway) VerifyReturn(ctx context.Context, orderID string) (*shurjopay.VerificationResult, error) {
	return &shurjopay.VerificationResult{}, nil
}

func (n *nopGateway) Capture(ctx context.Context, referenceID, transactionID, amount string) error {
	return payment.ErrUnsupportedOperation
}

func (n *nopGateway) Void(ctx context.Context, referenceID, transactionID string) error {
	return payment.ErrUnsupportedOperation
}

func (n *nopGateway) Refund(ctx context.Context, referenceID, transactionID, amount string) error {
	return payment.ErrUnsupportedOperation
}

var _ payment.Gateway = (*nopGateway)(nil)
