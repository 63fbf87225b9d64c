package microfinance

import (
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability"
	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

const operatorName = "Solidarity Microfinance"

type Provider struct{}

func NewProvider() Provider {
	return Provider{}
}

func (Provider) OperatorType() domain.OperatorType {
	return domain.OperatorMicrofinance
}

func (Provider) Bundle() capability.Bundle {
	return capability.Bundle{
		Operator:  domain.OperatorMicrofinance,
		Validator: NewValidator(),
		Rates:     NewRateCalculator(),
		Notifier:  NewNotifier(),
		External:  NewExternalAdapter(),
	}
}
