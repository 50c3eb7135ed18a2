package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrContractAlreadyExists = errors.New("contract already exists")
	ErrContractNotActive     = errors.New("contract is not active")
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrInvalidPeriodicAmount = errors.New("invalid periodic amount")
	ErrInvalidStartDate      = errors.New("invalid contract start date")
	ErrInvalidPaymentDate    = errors.New("invalid payment date")
	ErrInsufficientData      = errors.New("insufficient data for arrears calculation")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeContractNotFound      = "CONTRACT_NOT_FOUND"
	ErrCodeContractAlreadyExists = "CONTRACT_ALREADY_EXISTS"
	ErrCodeContractNotActive     = "CONTRACT_NOT_ACTIVE"
	ErrCodeInvalidPaymentAmount  = "INVALID_PAYMENT_AMOUNT"
	ErrCodeInvalidPeriodicAmount = "INVALID_PERIODIC_AMOUNT"
	ErrCodeInvalidStartDate      = "INVALID_START_DATE"
	ErrCodeInvalidPaymentDate    = "INVALID_PAYMENT_DATE"
	ErrCodeInsufficientData      = "INSUFFICIENT_DATA"
	ErrCodeDatabaseError         = "DATABASE_ERROR"
	ErrCodeCacheError            = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapContractNotFound(contractID string) *BusinessError {
	return NewBusinessError(
		ErrCodeContractNotFound,
		fmt.Sprintf("Contract with ID %s not found", contractID),
		ErrContractNotFound,
	)
}

func WrapContractAlreadyExists(contractID string) *BusinessError {
	return NewBusinessError(
		ErrCodeContractAlreadyExists,
		fmt.Sprintf("Contract with ID %s already exists", contractID),
		ErrContractAlreadyExists,
	)
}

func WrapContractNotActive(contractID, status string) *BusinessError {
	return NewBusinessError(
		ErrCodeContractNotActive,
		fmt.Sprintf("Contract with ID %s is %s, payments can only be recorded on active contracts", contractID, status),
		ErrContractNotActive,
	)
}

func WrapInvalidPaymentAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidPaymentAmount,
		fmt.Sprintf("Invalid payment amount: %s", amount),
		ErrInvalidPaymentAmount,
	)
}

func WrapInvalidPeriodicAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidPeriodicAmount,
		fmt.Sprintf("Periodic amount must be positive, got %s", amount),
		ErrInvalidPeriodicAmount,
	)
}

func WrapInvalidStartDate(raw string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidStartDate,
		fmt.Sprintf("Start date %q is not a valid date", raw),
		ErrInvalidStartDate,
	)
}

func WrapInvalidPaymentDate(raw string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidPaymentDate,
		fmt.Sprintf("Payment date %q is not a valid date", raw),
		ErrInvalidPaymentDate,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}
