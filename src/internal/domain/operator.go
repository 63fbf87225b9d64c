package domain

type OperatorType string

const (
	OperatorBank         OperatorType = "BANK"
	OperatorMobileMoney  OperatorType = "MOBILE_MONEY"
	OperatorMicrofinance OperatorType = "MICROFINANCE"
)

func (t OperatorType) IsValid() bool {
	switch t {
	case OperatorBank, OperatorMobileMoney, OperatorMicrofinance:
		return true
	}
	return false
}

type TransactionType string

const (
	TransactionTransferInternal      TransactionType = "TRANSFER_INTERNAL"
	TransactionTransferInterOperator TransactionType = "TRANSFER_INTER_OPERATOR"
	TransactionTransferInternational TransactionType = "TRANSFER_INTERNATIONAL"
	TransactionDeposit               TransactionType = "DEPOSIT"
	TransactionWithdrawal            TransactionType = "WITHDRAWAL"
	TransactionPayment               TransactionType = "PAYMENT"
	TransactionBillPayment           TransactionType = "BILL_PAYMENT"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTransferInternal, TransactionTransferInterOperator,
		TransactionTransferInternational, TransactionDeposit,
		TransactionWithdrawal, TransactionPayment, TransactionBillPayment:
		return true
	}
	return false
}

// Step identifies one optional phase of transaction execution.
type Step string

const (
	StepVerification       Step = "VERIFICATION"
	StepFraudCheck         Step = "FRAUD_CHECK"
	StepCurrencyConversion Step = "CURRENCY_CONVERSION"
	StepLogging            Step = "LOGGING"
	StepNotification       Step = "NOTIFICATION"
)
