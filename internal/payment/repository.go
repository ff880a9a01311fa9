package payment

import (
	"context"
	"database/sql"
)

type Repository interface {
	SaveTransaction(ctx context.Context, tx *Transaction) error
	UpdateOutcome(ctx context.Context, orderID, status, referenceID string) error
	GetByOrderID(ctx context.Context, orderID string) (*Transaction, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SaveTransaction(ctx context.Context, tx *Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payment_transactions (order_id,
		client_id,
		amount,
		currency,
		status,
		invoice_line)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		tx.OrderID, tx.ClientID, tx.Amount, tx.Currency, tx.Status, tx.InvoiceLine,
	)
	return err
}

func (r *repository) UpdateOutcome(ctx context.Context, orderID, status, referenceID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE payment_transactions
		SET status = $1, reference_id = $2, updated_at = now()
		WHERE order_id = $3
	`, status, referenceID, orderID)
	return err
}

func (r *repository) GetByOrderID(ctx context.Context, orderID string) (*Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, client_id, amount, currency, status, invoice_line, reference_id, created_at, updated_at
		FROM payment_transactions WHERE order_id = $1
	`, orderID)

	var tx Transaction
	err := row.Scan(
		&tx.ID, &tx.OrderID, &tx.ClientID, &tx.Amount, &tx.Currency,
		&tx.Status, &tx.InvoiceLine, &tx.ReferenceID, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
