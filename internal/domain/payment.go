package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
	PaymentStatusReversed  = "reversed"
)

// Payment is a receipt recorded against a contract. Payments are
// immutable once written; the arrears engine only reads them.
type Payment struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	ContractID  string          `json:"contract_id" db:"contract_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	PaymentDate time.Time       `json:"payment_date" db:"payment_date"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	PaymentDate string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}

type PaymentResponse struct {
	ContractID string   `json:"contract_id"`
	Payment    *Payment `json:"payment"`
}
