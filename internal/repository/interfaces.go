package repository

import (
	"context"

	"github.com/corefin/arrears-engine/internal/domain"
)

// ContractRepository defines the interface for loan contract data operations
type ContractRepository interface {
	// Create creates a new loan contract
	Create(ctx context.Context, contract *domain.LoanContract) error

	// GetByContractID retrieves a contract by its business identifier
	GetByContractID(ctx context.Context, contractID string) (*domain.LoanContract, error)

	// ListActive retrieves all contracts eligible for the overdue sweep
	ListActive(ctx context.Context) ([]*domain.LoanContract, error)

	// UpdateStatus updates a contract's lifecycle status
	UpdateStatus(ctx context.Context, contractID string, status string) error
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	// Create creates a new payment record
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByContractID retrieves all payments for a contract, oldest first
	GetByContractID(ctx context.Context, contractID string) ([]*domain.Payment, error)

	// GetCompletedByContractID retrieves completed payments only, oldest
	// first; this is the stream the arrears engine reconciles
	GetCompletedByContractID(ctx context.Context, contractID string) ([]*domain.Payment, error)
}
