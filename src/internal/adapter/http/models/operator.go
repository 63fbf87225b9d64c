package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

type OperatorResponse struct {
	OperatorType        string `json:"operatorType"`
	OperatorName        string `json:"operatorName"`
	NotificationChannel string `json:"notificationChannel"`
	ExternalSystem      string `json:"externalSystem"`
	Connected           bool   `json:"connected"`
}

type ValidateAccountRequest struct {
	Operator       string          `json:"operator"`
	AccountNumber  string          `json:"accountNumber"`
	ClientID       string          `json:"clientId"`
	InitialDeposit decimal.Decimal `json:"initialDeposit"`
}

func (r ValidateAccountRequest) Validate() error {
	var errs []string

	operator := strings.ToUpper(strings.TrimSpace(r.Operator))
	if operator == "" {
		errs = append(errs, "operator is required")
	} else if !domain.OperatorType(operator).IsValid() {
		errs = append(errs, "operator must be one of BANK, MOBILE_MONEY, MICROFINANCE")
	}

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if strings.TrimSpace(r.ClientID) == "" {
		errs = append(errs, "clientId is required")
	}
	if r.InitialDeposit.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "initialDeposit must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ValidateAccountResponse struct {
	Approved     bool   `json:"approved"`
	Message      string `json:"message"`
	Advisory     string `json:"advisory,omitempty"`
	OperatorName string `json:"operatorName"`
}

type SavingsRateResponse struct {
	OperatorType      string          `json:"operatorType"`
	OperatorName      string          `json:"operatorName"`
	Balance           decimal.Decimal `json:"balance"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
}
