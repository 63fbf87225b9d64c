package domain

import "github.com/shopspring/decimal"

// AccountValidationOutcome is the result of a validator call. Approved=false
// carries the rejection reason in Message; Advisory carries a non-failing
// warning when the operator policy emits one.
type AccountValidationOutcome struct {
	Approved     bool   `json:"approved"`
	Message      string `json:"message"`
	Advisory     string `json:"advisory,omitempty"`
	OperatorName string `json:"operatorName"`
}

type NotificationOutcome struct {
	Delivered        bool   `json:"delivered"`
	FormattedMessage string `json:"formattedMessage"`
	Channel          string `json:"channel"`
	OperatorName     string `json:"operatorName"`
}

type ExternalTransferOutcome struct {
	Succeeded         bool   `json:"succeeded"`
	ExternalReference string `json:"externalReference,omitempty"`
	SystemName        string `json:"systemName"`
	Diagnostic        string `json:"diagnostic"`
}

type SyncOutcome struct {
	Succeeded   bool   `json:"succeeded"`
	SystemName  string `json:"systemName"`
	ItemsSynced int    `json:"itemsSynced"`
	Diagnostic  string `json:"diagnostic,omitempty"`
}

// ExternalBalance is the balance reported by an operator's external system.
type ExternalBalance struct {
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	SystemName    string          `json:"systemName"`
}
