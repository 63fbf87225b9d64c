package capability

import (
	"fmt"
	"sort"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

// Provider supplies the capability bundle of one operator family.
type Provider interface {
	OperatorType() domain.OperatorType
	Bundle() Bundle
}

// Resolver maps operator types to pre-built capability bundles. The mapping is
// fixed at construction and read-only afterwards, so concurrent resolution
// needs no locking.
type Resolver struct {
	bundles map[domain.OperatorType]Bundle
}

// NewResolver registers one bundle per provider. It fails when no provider is
// given or when two providers claim the same operator type.
func NewResolver(providers ...Provider) (*Resolver, error) {
	if len(providers) == 0 {
		return nil, domain.ErrNoProviders
	}

	bundles := make(map[domain.OperatorType]Bundle, len(providers))
	for _, provider := range providers {
		operatorType := provider.OperatorType()
		if _, exists := bundles[operatorType]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateProvider, operatorType)
		}
		bundles[operatorType] = provider.Bundle()
	}

	return &Resolver{bundles: bundles}, nil
}

// Resolve returns the capability bundle of the given operator type.
func (r *Resolver) Resolve(operatorType domain.OperatorType) (Bundle, error) {
	bundle, ok := r.bundles[operatorType]
	if !ok {
		return Bundle{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedOperator, operatorType)
	}

	return bundle, nil
}

func (r *Resolver) IsSupported(operatorType domain.OperatorType) bool {
	_, ok := r.bundles[operatorType]
	return ok
}

// SupportedTypes returns the registered operator types in stable order.
func (r *Resolver) SupportedTypes() []domain.OperatorType {
	types := make([]domain.OperatorType, 0, len(r.bundles))
	for operatorType := range r.bundles {
		types = append(types, operatorType)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}
