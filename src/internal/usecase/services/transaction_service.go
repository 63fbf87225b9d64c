package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/http/models"
	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability"
	"github.com/api-sage/multiop-transaction-engine/src/internal/commons"
	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
	"github.com/api-sage/multiop-transaction-engine/src/internal/engine"
	"github.com/api-sage/multiop-transaction-engine/src/internal/logger"
	"github.com/api-sage/multiop-transaction-engine/src/internal/usecase/service_interfaces"
)

// Verify that TransactionService implements the service_interfaces.TransactionService interface
var _ service_interfaces.TransactionService = (*TransactionService)(nil)

type TransactionService struct {
	resolver       *capability.Resolver
	executor       *engine.Executor
	transactionLog repo_interfaces.TransactionLogRepository
}

func NewTransactionService(
	resolver *capability.Resolver,
	executor *engine.Executor,
	transactionLog repo_interfaces.TransactionLogRepository,
) *TransactionService {
	return &TransactionService{
		resolver:       resolver,
		executor:       executor,
		transactionLog: transactionLog,
	}
}

func (s *TransactionService) ExecuteTransaction(ctx context.Context, req models.ExecuteTransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service execute request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transaction service execute validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	operatorType := domain.OperatorType(strings.ToUpper(strings.TrimSpace(req.Operator)))
	bundle, err := s.resolver.Resolve(operatorType)
	if err != nil {
		logger.Error("transaction service execute resolve operator failed", err, logger.Fields{
			"operator": operatorType,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Operator not supported", err.Error()), err
	}

	spec, err := assembleSpec(req, operatorType)
	if err != nil {
		logger.Error("transaction service execute assemble failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	result, err := s.executor.Execute(ctx, spec, bundle)
	if err != nil {
		logger.Error("transaction service execute engine failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("failed to execute transaction", "Unable to execute transaction right now"), err
	}

	record := domain.TransactionRecord{
		Reference: result.Reference,
		Operator:  operatorType,
		Spec:      spec,
		Result:    result,
		CreatedAt: result.ExecutedAt,
	}
	if appendErr := s.transactionLog.Append(ctx, record); appendErr != nil {
		// The transaction still executed; the caller gets the result and the
		// missing history entry is reported separately.
		logger.Error("transaction service execute history append failed", appendErr, logger.Fields{
			"reference": result.Reference,
		})
	}

	response := mapRecordToResponse(record)

	logger.Info("transaction service execute finished", logger.Fields{
		"reference": response.Reference,
		"operator":  response.Operator,
		"success":   response.Success,
	})

	return commons.SuccessResponse(result.Message, response), nil
}

func (s *TransactionService) ListTransactions(ctx context.Context) (commons.Response[[]models.TransactionResponse], error) {
	logger.Info("transaction service list request", nil)

	records, err := s.transactionLog.List(ctx)
	if err != nil {
		logger.Error("transaction service list failed", err, nil)
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to list transactions", "Unable to fetch transactions right now"), err
	}

	resp := make([]models.TransactionResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, mapRecordToResponse(record))
	}

	return commons.SuccessResponse("transactions fetched successfully", resp), nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, reference string) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service get request", logger.Fields{
		"reference": reference,
	})

	reference = strings.TrimSpace(reference)
	if reference == "" {
		err := errors.New("reference is required")
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	record, err := s.transactionLog.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Transaction not found"), err
		}
		logger.Error("transaction service get failed", err, logger.Fields{
			"reference": reference,
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to get transaction", "Unable to fetch transaction right now"), err
	}

	return commons.SuccessResponse("transaction fetched successfully", mapRecordToResponse(record)), nil
}

func assembleSpec(req models.ExecuteTransactionRequest, operatorType domain.OperatorType) (domain.TransactionSpec, error) {
	preset := strings.ToUpper(strings.TrimSpace(req.Preset))
	source := strings.TrimSpace(req.SourceAccount)
	destination := strings.TrimSpace(req.DestinationAccount)

	var builder *engine.TransactionBuilder
	switch preset {
	case "QUICK_TRANSFER":
		builder = engine.QuickTransfer(source, destination, req.Amount, req.Currency)
	case "FULL_TRANSFER":
		builder = engine.FullTransfer(source, destination, req.Amount, req.Currency)
	case "INTER_OPERATOR_TRANSFER":
		destinationOperator := domain.OperatorType(strings.ToUpper(strings.TrimSpace(req.DestinationOperator)))
		builder = engine.InterOperatorTransfer(source, operatorType, destination, destinationOperator, req.Amount, req.Currency)
	case "INTERNATIONAL_TRANSFER":
		builder = engine.InternationalTransfer(source, destination, req.Amount, req.Currency, req.TargetCurrency, *req.ExchangeRate)
	case "DEPOSIT":
		builder = engine.Deposit(source, req.Amount, req.Currency)
	case "WITHDRAWAL":
		builder = engine.Withdrawal(source, req.Amount, req.Currency)
	case "BILL_PAYMENT":
		builder = engine.BillPayment(source, destination, req.Amount, req.Currency)
	default:
		builder = engine.NewTransactionBuilder().
			Type(domain.TransactionType(strings.ToUpper(strings.TrimSpace(req.Type)))).
			From(source, operatorType).
			To(destination).
			Amount(req.Amount).
			Currency(req.Currency)

		for _, step := range req.Steps {
			switch domain.Step(strings.ToUpper(strings.TrimSpace(step))) {
			case domain.StepVerification:
				builder.WithVerification()
			case domain.StepFraudCheck:
				builder.WithFraudCheck()
			case domain.StepLogging:
				builder.WithLogging()
			case domain.StepNotification:
				builder.WithNotification()
			case domain.StepCurrencyConversion:
				builder.WithCurrencyConversion(req.TargetCurrency, *req.ExchangeRate)
			}
		}
	}

	builder.Description(req.Description)

	for _, commission := range req.Commissions {
		builder.WithCommission(domain.Commission{
			Label:   strings.TrimSpace(commission.Label),
			Kind:    domain.CommissionKind(strings.ToUpper(strings.TrimSpace(commission.Kind))),
			Value:   commission.Value,
			Minimum: commission.Minimum,
			Maximum: commission.Maximum,
		})
	}

	return builder.Build()
}

func mapRecordToResponse(record domain.TransactionRecord) models.TransactionResponse {
	response := models.TransactionResponse{
		Reference:       record.Reference,
		Operator:        string(record.Operator),
		Type:            string(record.Spec.Type),
		Success:         record.Result.Success,
		Amount:          record.Spec.Amount,
		FinalAmount:     record.Result.FinalAmount,
		Currency:        recordCurrency(record),
		Fee:             record.Result.Fee,
		TotalCommission: record.Result.TotalCommission,
		Message:         record.Result.Message,
		ExecutedAt:      record.Result.ExecutedAt.Format(time.RFC3339),
	}

	for _, line := range record.Result.CommissionLines {
		response.CommissionLines = append(response.CommissionLines, models.CommissionLineResponse{
			Label:  line.Label,
			Amount: line.Amount,
		})
	}

	for _, outcome := range record.Result.StepOutcomes {
		response.StepOutcomes = append(response.StepOutcomes, models.StepOutcomeResponse{
			Step:    string(outcome.Step),
			Status:  string(outcome.Status),
			Message: outcome.Message,
		})
	}

	return response
}

func recordCurrency(record domain.TransactionRecord) string {
	if record.Spec.HasStep(domain.StepCurrencyConversion) && record.Result.Success {
		return record.Spec.TargetCurrency
	}
	return record.Spec.Currency
}
