package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/corefin/arrears-engine/internal/domain"
	"github.com/corefin/arrears-engine/internal/service"
	customError "github.com/corefin/arrears-engine/pkg/errors"
	"github.com/corefin/arrears-engine/pkg/response"
)

type ContractHandler struct {
	service   *service.ArrearsService
	validator *validator.Validate
}

func NewContractHandler(service *service.ArrearsService) *ContractHandler {
	return &ContractHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateContract handles POST /api/v1/contracts
func (h *ContractHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Request validation failed", err)
		return
	}

	contract, err := h.service.CreateContract(r.Context(), &request)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, &domain.CreateContractResponse{Contract: contract})
}

// RecordPayment handles POST /api/v1/contracts/{contractId}/payments
func (h *ContractHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	contractID := mux.Vars(r)["contractId"]

	var request domain.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Request validation failed", err)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), contractID, &request)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, &domain.PaymentResponse{ContractID: contractID, Payment: payment})
}

// GetInstallments handles GET /api/v1/contracts/{contractId}/installments
func (h *ContractHandler) GetInstallments(w http.ResponseWriter, r *http.Request) {
	contractID := mux.Vars(r)["contractId"]

	asOf, err := parseAsOf(r)
	if err != nil {
		response.BadRequest(w, "Invalid as_of date, expected YYYY-MM-DD", err)
		return
	}

	installments, err := h.service.GetInstallments(r.Context(), contractID, asOf)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, installments)
}

// GetArrears handles GET /api/v1/contracts/{contractId}/arrears
func (h *ContractHandler) GetArrears(w http.ResponseWriter, r *http.Request) {
	contractID := mux.Vars(r)["contractId"]

	asOf, err := parseAsOf(r)
	if err != nil {
		response.BadRequest(w, "Invalid as_of date, expected YYYY-MM-DD", err)
		return
	}

	result, err := h.service.GetArrears(r.Context(), contractID, asOf)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	if asOf.IsZero() {
		asOf = time.Now()
	}
	response.Success(w, &domain.ArrearsResponse{
		ContractID: contractID,
		AsOf:       asOf,
		Arrears:    result,
	})
}

// IsDelinquent handles GET /api/v1/contracts/{contractId}/delinquent
func (h *ContractHandler) IsDelinquent(w http.ResponseWriter, r *http.Request) {
	contractID := mux.Vars(r)["contractId"]

	delinquent, overdueCount, err := h.service.IsDelinquent(r.Context(), contractID)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, &domain.DelinquentResponse{
		ContractID:   contractID,
		IsDelinquent: delinquent,
		OverdueCount: overdueCount,
	})
}

// parseAsOf reads the optional as_of query parameter; a zero time means
// "use the server clock".
func parseAsOf(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

func writeBusinessError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if !errors.As(err, &businessErr) {
		response.InternalServerError(w, "Unexpected error", err)
		return
	}

	switch businessErr.Code {
	case customError.ErrCodeContractNotFound:
		response.NotFound(w, businessErr.Message)
	case customError.ErrCodeContractAlreadyExists:
		response.Conflict(w, businessErr.Message, businessErr)
	case customError.ErrCodeContractNotActive,
		customError.ErrCodeInvalidPaymentAmount,
		customError.ErrCodeInvalidPeriodicAmount:
		response.UnprocessableEntity(w, businessErr.Message, businessErr)
	case customError.ErrCodeInvalidStartDate,
		customError.ErrCodeInvalidPaymentDate:
		response.BadRequest(w, businessErr.Message, businessErr)
	default:
		response.InternalServerError(w, businessErr.Message, businessErr)
	}
}
