package repository

import (
	"context"

	"github.com/corefin/arrears-engine/internal/domain"

	"github.com/jmoiron/sqlx"
)

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, contract_id, amount, payment_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.ContractID,
		payment.Amount,
		payment.PaymentDate,
		payment.Status,
		payment.CreatedAt,
	)

	return err
}

func (r *paymentRepository) GetByContractID(ctx context.Context, contractID string) ([]*domain.Payment, error) {
	query := `
		SELECT id, contract_id, amount, payment_date, status, created_at
		FROM payments
		WHERE contract_id = $1
		ORDER BY payment_date, created_at
	`

	var payments []*domain.Payment
	err := r.db.SelectContext(ctx, &payments, query, contractID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) GetCompletedByContractID(ctx context.Context, contractID string) ([]*domain.Payment, error) {
	query := `
		SELECT id, contract_id, amount, payment_date, status, created_at
		FROM payments
		WHERE contract_id = $1 AND status = 'completed'
		ORDER BY payment_date, created_at
	`

	var payments []*domain.Payment
	err := r.db.SelectContext(ctx, &payments, query, contractID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
