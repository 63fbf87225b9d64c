package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/http/models"
	"github.com/api-sage/multiop-transaction-engine/src/internal/commons"
	"github.com/api-sage/multiop-transaction-engine/src/internal/logger"
)

type OperatorService interface {
	ListOperators(ctx context.Context) (commons.Response[[]models.OperatorResponse], error)
	ValidateAccountCreation(ctx context.Context, req models.ValidateAccountRequest) (commons.Response[models.ValidateAccountResponse], error)
	GetSavingsRate(ctx context.Context, operator string, balance decimal.Decimal) (commons.Response[models.SavingsRateResponse], error)
}

type OperatorController struct {
	service OperatorService
}

func NewOperatorController(service OperatorService) *OperatorController {
	return &OperatorController{service: service}
}

func (c *OperatorController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("/operators", wrap(c.list))
	mux.Handle("/operators/validate-account", wrap(c.validateAccount))
	mux.Handle("/operators/savings-rate", wrap(c.savingsRate))
}

func (c *OperatorController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		response := commons.ErrorResponse[[]models.OperatorResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	response, err := c.service.ListOperators(r.Context())
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *OperatorController) validateAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		response := commons.ErrorResponse[models.ValidateAccountResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	var req models.ValidateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.ValidateAccountResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.ValidateAccountCreation(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := http.StatusInternalServerError
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		if response.Message == "Operator not supported" {
			status = http.StatusNotFound
		}

		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *OperatorController) savingsRate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		response := commons.ErrorResponse[models.SavingsRateResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	balance, err := decimal.NewFromString(r.URL.Query().Get("balance"))
	if err != nil {
		response := commons.ErrorResponse[models.SavingsRateResponse]("validation failed", "balance must be numeric")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.GetSavingsRate(r.Context(), r.URL.Query().Get("operator"), balance)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := http.StatusInternalServerError
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		if response.Message == "Operator not supported" {
			status = http.StatusNotFound
		}

		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
