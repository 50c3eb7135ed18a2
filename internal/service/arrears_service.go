package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/corefin/arrears-engine/internal/arrears"
	"github.com/corefin/arrears-engine/internal/config"
	"github.com/corefin/arrears-engine/internal/domain"
	"github.com/corefin/arrears-engine/internal/repository"
	customError "github.com/corefin/arrears-engine/pkg/errors"
	"github.com/corefin/arrears-engine/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const delinquencyKeyPrefix = "delinquent:"

type ArrearsService struct {
	ContractRepo repository.ContractRepository
	PaymentRepo  repository.PaymentRepository
	redis        *redis.Client
	config       *config.Config

	// Now supplies the calculation date; swapped out in tests for
	// deterministic results.
	Now func() time.Time
}

func NewArrearsService(
	contractRepo repository.ContractRepository,
	paymentRepo repository.PaymentRepository,
	redisClient *redis.Client,
	cfg *config.Config,
) *ArrearsService {
	return &ArrearsService{
		ContractRepo: contractRepo,
		PaymentRepo:  paymentRepo,
		redis:        redisClient,
		config:       cfg,
		Now:          time.Now,
	}
}

// CreateContract registers a loan contract with a structured period
// term. Free-text period descriptions are a data-entry concern; by the
// time a contract reaches storage its term is already {count, unit}.
func (s *ArrearsService) CreateContract(ctx context.Context, request *domain.CreateContractRequest) (*domain.LoanContract, error) {
	existing, err := s.ContractRepo.GetByContractID(ctx, request.ContractID)
	if err == nil && existing != nil {
		return nil, customError.WrapContractAlreadyExists(request.ContractID)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	startDate, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		return nil, customError.WrapInvalidStartDate(request.StartDate)
	}

	if !request.PeriodicAmount.IsPositive() {
		return nil, customError.WrapInvalidPeriodicAmount(request.PeriodicAmount.String())
	}

	rate := request.MonthlyRate
	if rate.IsZero() {
		rate = s.config.GetDefaultMonthlyRate()
	}
	graceDays := request.GraceDays
	if graceDays <= 0 {
		graceDays = s.config.Business.GracePeriodDays
	}

	now := s.Now()
	contract := &domain.LoanContract{
		ID:             uuid.New(),
		ContractID:     request.ContractID,
		StartDate:      utils.TruncateToDay(startDate),
		PeriodicAmount: request.PeriodicAmount,
		PeriodCount:    request.PeriodCount,
		PeriodUnit:     request.PeriodUnit,
		MonthlyRate:    rate,
		GraceDays:      graceDays,
		Status:         domain.ContractStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.ContractRepo.Create(ctx, contract); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return contract, nil
}

// RecordPayment books a completed receipt against a contract.
func (s *ArrearsService) RecordPayment(ctx context.Context, contractID string, request *domain.RecordPaymentRequest) (*domain.Payment, error) {
	contract, err := s.getContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if contract.Status == domain.ContractStatusClosed {
		return nil, customError.WrapContractNotActive(contractID, contract.Status)
	}

	if !request.Amount.IsPositive() {
		return nil, customError.WrapInvalidPaymentAmount(request.Amount.String())
	}

	paymentDate := utils.TruncateToDay(s.Now())
	if request.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", request.PaymentDate)
		if err != nil {
			return nil, customError.WrapInvalidPaymentDate(request.PaymentDate)
		}
		paymentDate = utils.TruncateToDay(parsed)
	}

	payment := &domain.Payment{
		ID:          uuid.New(),
		ContractID:  contractID,
		Amount:      request.Amount,
		PaymentDate: paymentDate,
		Status:      domain.PaymentStatusCompleted,
		CreatedAt:   s.Now(),
	}

	if err = s.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return payment, nil
}

// GetInstallments returns the generated due schedule with the payment
// history applied FIFO, as shown on the collections screens.
func (s *ArrearsService) GetInstallments(ctx context.Context, contractID string, asOf time.Time) (*domain.InstallmentsResponse, error) {
	contract, err := s.getContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	asOf = s.resolveAsOf(asOf)
	alloc, err := s.reconcile(ctx, contract, asOf)
	if err != nil {
		return nil, err
	}

	return &domain.InstallmentsResponse{
		ContractID:  contractID,
		AsOf:        asOf,
		Periods:     alloc.Periods,
		Unallocated: alloc.Unallocated,
		TotalPaid:   alloc.TotalPaid,
	}, nil
}

// GetArrears recomputes the arrears summary for a contract from its
// payment history. Nothing is cached; every call reflects storage as
// of now.
func (s *ArrearsService) GetArrears(ctx context.Context, contractID string, asOf time.Time) (*domain.ArrearsResult, error) {
	contract, err := s.getContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	asOf = s.resolveAsOf(asOf)
	alloc, err := s.reconcile(ctx, contract, asOf)
	if err != nil {
		return nil, err
	}

	return arrears.Compute(contract, alloc, asOf), nil
}

// IsDelinquent reports whether a contract has at least the threshold
// number of overdue installments. The flag is served from Redis when
// the daily sweep has populated it and recomputed otherwise.
func (s *ArrearsService) IsDelinquent(ctx context.Context, contractID string) (bool, int, error) {
	if flagged, ok := s.cachedDelinquency(ctx, contractID); ok {
		return flagged, 0, nil
	}

	result, err := s.GetArrears(ctx, contractID, time.Time{})
	if err != nil {
		return false, 0, err
	}

	delinquent := result.Status == domain.ArrearsStatusOK &&
		result.OverduePeriods >= s.config.Business.DelinquencyThreshold
	s.cacheDelinquency(ctx, contractID, delinquent)

	return delinquent, result.OverduePeriods, nil
}

// SweepOverdue recomputes arrears for every active contract, moves
// contracts across the delinquency threshold into delinquent status
// (and back), and refreshes the Redis flags. Run daily by the
// scheduler. Returns the number of delinquent contracts.
func (s *ArrearsService) SweepOverdue(ctx context.Context) (int, error) {
	contracts, err := s.ContractRepo.ListActive(ctx)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	asOf := s.resolveAsOf(time.Time{})
	flagged := 0
	for _, contract := range contracts {
		alloc, err := s.reconcile(ctx, contract, asOf)
		if err != nil {
			log.Printf("sweep: skipping contract %s: %v", contract.ContractID, err)
			continue
		}

		result := arrears.Compute(contract, alloc, asOf)
		if result.Status != domain.ArrearsStatusOK {
			log.Printf("sweep: contract %s has insufficient data: %s", contract.ContractID, result.Reason)
			continue
		}

		delinquent := result.OverduePeriods >= s.config.Business.DelinquencyThreshold
		if delinquent {
			flagged++
		}

		switch {
		case delinquent && contract.Status != domain.ContractStatusDelinquent:
			if err := s.ContractRepo.UpdateStatus(ctx, contract.ContractID, domain.ContractStatusDelinquent); err != nil {
				return flagged, customError.WrapDatabaseError(err)
			}
		case !delinquent && contract.Status == domain.ContractStatusDelinquent:
			if err := s.ContractRepo.UpdateStatus(ctx, contract.ContractID, domain.ContractStatusActive); err != nil {
				return flagged, customError.WrapDatabaseError(err)
			}
		}

		s.cacheDelinquency(ctx, contract.ContractID, delinquent)
	}

	return flagged, nil
}

func (s *ArrearsService) getContract(ctx context.Context, contractID string) (*domain.LoanContract, error) {
	contract, err := s.ContractRepo.GetByContractID(ctx, contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapContractNotFound(contractID)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return contract, nil
}

// reconcile fetches the completed payment stream and applies it FIFO
// against the generated due schedule.
func (s *ArrearsService) reconcile(ctx context.Context, contract *domain.LoanContract, asOf time.Time) (arrears.Allocation, error) {
	records, err := s.PaymentRepo.GetCompletedByContractID(ctx, contract.ContractID)
	if err != nil {
		return arrears.Allocation{}, customError.WrapDatabaseError(err)
	}

	payments := make([]domain.Payment, 0, len(records))
	for _, record := range records {
		payments = append(payments, *record)
	}

	schedule := arrears.Schedule(contract, asOf)
	return arrears.Allocate(schedule, payments), nil
}

func (s *ArrearsService) resolveAsOf(asOf time.Time) time.Time {
	if asOf.IsZero() {
		asOf = s.Now()
	}
	return utils.TruncateToDay(asOf)
}

func (s *ArrearsService) cachedDelinquency(ctx context.Context, contractID string) (bool, bool) {
	if s.redis == nil {
		return false, false
	}

	value, err := s.redis.Get(ctx, delinquencyKeyPrefix+contractID).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("delinquency cache read failed for %s: %v", contractID, err)
		}
		return false, false
	}

	return value == "1", true
}

func (s *ArrearsService) cacheDelinquency(ctx context.Context, contractID string, delinquent bool) {
	if s.redis == nil {
		return
	}

	value := "0"
	if delinquent {
		value = "1"
	}

	key := fmt.Sprintf("%s%s", delinquencyKeyPrefix, contractID)
	if err := s.redis.Set(ctx, key, value, s.config.Business.DelinquencyFlagTTL).Err(); err != nil {
		log.Printf("delinquency cache write failed for %s: %v", contractID, err)
	}
}
