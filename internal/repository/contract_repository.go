package repository

import (
	"context"
	"time"

	"github.com/corefin/arrears-engine/internal/domain"

	"github.com/jmoiron/sqlx"
)

type contractRepository struct {
	db *sqlx.DB
}

func NewContractRepository(db *sqlx.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, contract *domain.LoanContract) error {
	query := `
		INSERT INTO loan_contracts (id, contract_id, start_date, periodic_amount, period_count, period_unit, monthly_rate, grace_days, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		contract.ID,
		contract.ContractID,
		contract.StartDate,
		contract.PeriodicAmount,
		contract.PeriodCount,
		contract.PeriodUnit,
		contract.MonthlyRate,
		contract.GraceDays,
		contract.Status,
		contract.CreatedAt,
		contract.UpdatedAt,
	)

	return err
}

func (r *contractRepository) GetByContractID(ctx context.Context, contractID string) (*domain.LoanContract, error) {
	query := `
		SELECT id, contract_id, start_date, periodic_amount, period_count, period_unit, monthly_rate, grace_days, status, created_at, updated_at
		FROM loan_contracts
		WHERE contract_id = $1
	`

	var contract domain.LoanContract
	err := r.db.GetContext(ctx, &contract, query, contractID)
	if err != nil {
		return nil, err
	}

	return &contract, nil
}

func (r *contractRepository) ListActive(ctx context.Context) ([]*domain.LoanContract, error) {
	query := `
		SELECT id, contract_id, start_date, periodic_amount, period_count, period_unit, monthly_rate, grace_days, status, created_at, updated_at
		FROM loan_contracts
		WHERE status IN ('active', 'delinquent')
		ORDER BY contract_id
	`

	var contracts []*domain.LoanContract
	err := r.db.SelectContext(ctx, &contracts, query)
	if err != nil {
		return nil, err
	}

	return contracts, nil
}

func (r *contractRepository) UpdateStatus(ctx context.Context, contractID string, status string) error {
	query := `
		UPDATE loan_contracts
		SET status = $2, updated_at = $3
		WHERE contract_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, contractID, status, time.Now())
	return err
}
