package mobilemoney

import (
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability"
	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

const operatorName = "SwiftCash Mobile Money"

type Provider struct{}

func NewProvider() Provider {
	return Provider{}
}

func (Provider) OperatorType() domain.OperatorType {
	return domain.OperatorMobileMoney
}

func (Provider) Bundle() capability.Bundle {
	return capability.Bundle{
		Operator:  domain.OperatorMobileMoney,
		Validator: NewValidator(),
		Rates:     NewRateCalculator(),
		Notifier:  NewNotifier(),
		External:  NewExternalAdapter(),
	}
}
