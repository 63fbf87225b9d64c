package bank

import (
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability"
	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

const operatorName = "Atlantic Continental Bank"

type Provider struct{}

func NewProvider() Provider {
	return Provider{}
}

func (Provider) OperatorType() domain.OperatorType {
	return domain.OperatorBank
}

func (Provider) Bundle() capability.Bundle {
	return capability.Bundle{
		Operator:  domain.OperatorBank,
		Validator: NewValidator(),
		Rates:     NewRateCalculator(),
		Notifier:  NewNotifier(),
		External:  NewExternalAdapter(),
	}
}
