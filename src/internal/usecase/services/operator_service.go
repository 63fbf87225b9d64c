package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/http/models"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability"
	"github.com/api-sage/multiop-transaction-engine/src/internal/commons"
	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
	"github.com/api-sage/multiop-transaction-engine/src/internal/logger"
	"github.com/api-sage/multiop-transaction-engine/src/internal/usecase/service_interfaces"
)

// Verify that OperatorService implements the service_interfaces.OperatorService interface
var _ service_interfaces.OperatorService = (*OperatorService)(nil)

type OperatorService struct {
	resolver *capability.Resolver
}

func NewOperatorService(resolver *capability.Resolver) *OperatorService {
	return &OperatorService{resolver: resolver}
}

func (s *OperatorService) ListOperators(ctx context.Context) (commons.Response[[]models.OperatorResponse], error) {
	logger.Info("operator service list request", nil)

	_ = ctx
	types := s.resolver.SupportedTypes()
	resp := make([]models.OperatorResponse, 0, len(types))
	for _, operatorType := range types {
		bundle, err := s.resolver.Resolve(operatorType)
		if err != nil {
			logger.Error("operator service list resolve failed", err, logger.Fields{
				"operator": operatorType,
			})
			return commons.ErrorResponse[[]models.OperatorResponse]("failed to list operators", "Unable to fetch operators right now"), err
		}

		resp = append(resp, models.OperatorResponse{
			OperatorType:        string(operatorType),
			OperatorName:        bundle.Validator.OperatorName(),
			NotificationChannel: bundle.Notifier.Channel(),
			ExternalSystem:      bundle.External.SystemName(),
			Connected:           bundle.External.CheckConnectivity(),
		})
	}

	return commons.SuccessResponse("operators fetched successfully", resp), nil
}

func (s *OperatorService) ValidateAccountCreation(ctx context.Context, req models.ValidateAccountRequest) (commons.Response[models.ValidateAccountResponse], error) {
	logger.Info("operator service validate account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("operator service validate account validation failed", err, nil)
		return commons.ErrorResponse[models.ValidateAccountResponse]("validation failed", err.Error()), err
	}

	operatorType := domain.OperatorType(strings.ToUpper(strings.TrimSpace(req.Operator)))
	bundle, err := s.resolver.Resolve(operatorType)
	if err != nil {
		return commons.ErrorResponse[models.ValidateAccountResponse]("Operator not supported", err.Error()), err
	}

	outcome := bundle.Validator.ValidateAccountCreation(req.AccountNumber, req.ClientID, req.InitialDeposit)
	response := models.ValidateAccountResponse{
		Approved:     outcome.Approved,
		Message:      outcome.Message,
		Advisory:     outcome.Advisory,
		OperatorName: outcome.OperatorName,
	}

	logger.Info("operator service validate account finished", logger.Fields{
		"operator": operatorType,
		"approved": response.Approved,
	})

	return commons.SuccessResponse("account validation completed", response), nil
}

func (s *OperatorService) GetSavingsRate(ctx context.Context, operator string, balance decimal.Decimal) (commons.Response[models.SavingsRateResponse], error) {
	logger.Info("operator service savings rate request", logger.Fields{
		"operator": operator,
		"balance":  balance.String(),
	})

	_ = ctx
	operatorType := domain.OperatorType(strings.ToUpper(strings.TrimSpace(operator)))
	if !operatorType.IsValid() {
		err := domain.ErrUnsupportedOperator
		return commons.ErrorResponse[models.SavingsRateResponse]("validation failed", "operator must be one of BANK, MOBILE_MONEY, MICROFINANCE"), err
	}
	if balance.LessThan(decimal.Zero) {
		return commons.ErrorResponse[models.SavingsRateResponse]("validation failed", "balance must not be negative"), domain.ErrIncompleteSpec
	}

	bundle, err := s.resolver.Resolve(operatorType)
	if err != nil {
		return commons.ErrorResponse[models.SavingsRateResponse]("Operator not supported", err.Error()), err
	}

	response := models.SavingsRateResponse{
		OperatorType:      string(operatorType),
		OperatorName:      bundle.Rates.OperatorName(),
		Balance:           balance,
		AnnualRatePercent: bundle.Rates.CalculateSavingsInterestRate(balance),
	}

	return commons.SuccessResponse("savings rate fetched successfully", response), nil
}
