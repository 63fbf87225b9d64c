package domain

import "github.com/shopspring/decimal"

type CommissionKind string

const (
	CommissionPercentage CommissionKind = "PERCENTAGE"
	CommissionFlat       CommissionKind = "FLAT"
)

// Commission is an additional fee item attached to a transaction at assembly
// time. Percentage commissions carry Value as a percent (5 means 5%); flat
// commissions carry Value as an absolute amount. Minimum and Maximum clamp
// the computed amount when set.
type Commission struct {
	Label   string           `json:"label"`
	Kind    CommissionKind   `json:"kind"`
	Value   decimal.Decimal  `json:"value"`
	Minimum *decimal.Decimal `json:"minimum,omitempty"`
	Maximum *decimal.Decimal `json:"maximum,omitempty"`
}

// AmountOn computes the commission charged on the given base amount.
// Percentage commissions are computed on the base and clamped to
// [Minimum, Maximum]; flat commissions ignore the base and the clamps.
func (c Commission) AmountOn(base decimal.Decimal) decimal.Decimal {
	if c.Kind == CommissionFlat {
		return c.Value
	}

	amount := base.Mul(c.Value).Div(decimal.NewFromInt(100))
	if c.Minimum != nil && amount.LessThan(*c.Minimum) {
		amount = *c.Minimum
	}
	if c.Maximum != nil && amount.GreaterThan(*c.Maximum) {
		amount = *c.Maximum
	}

	return amount
}
