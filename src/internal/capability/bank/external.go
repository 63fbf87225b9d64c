package bank

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

const externalSystemName = "CORE-BANKING-NET"

// ExternalAdapter simulates the bank's core-banking network. Connectivity is
// always up in this simulation; transfers still fail on malformed destination
// accounts.
type ExternalAdapter struct {
	connected bool
}

func NewExternalAdapter() *ExternalAdapter {
	return &ExternalAdapter{connected: true}
}

func (*ExternalAdapter) OperatorName() string {
	return operatorName
}

func (*ExternalAdapter) SystemName() string {
	return externalSystemName
}

func (a *ExternalAdapter) CheckConnectivity() bool {
	return a.connected
}

func (a *ExternalAdapter) ExecuteExternalTransfer(destinationAccount string, amount decimal.Decimal, reference string) domain.ExternalTransferOutcome {
	if !a.CheckConnectivity() {
		return domain.ExternalTransferOutcome{
			Succeeded:  false,
			SystemName: externalSystemName,
			Diagnostic: "core banking network is unreachable",
		}
	}

	destinationAccount = strings.TrimSpace(destinationAccount)
	if !accountPattern.MatchString(destinationAccount) {
		return domain.ExternalTransferOutcome{
			Succeeded:  false,
			SystemName: externalSystemName,
			Diagnostic: "destination account format is invalid for bank transfers",
		}
	}

	return domain.ExternalTransferOutcome{
		Succeeded:         true,
		ExternalReference: fmt.Sprintf("CBN-%s", uuid.NewString()),
		SystemName:        externalSystemName,
		Diagnostic:        fmt.Sprintf("transfer of %s to %s accepted (ref %s)", amount.StringFixed(2), destinationAccount, reference),
	}
}

func (a *ExternalAdapter) FetchExternalBalance(accountNumber string) domain.ExternalBalance {
	return domain.ExternalBalance{
		AccountNumber: strings.TrimSpace(accountNumber),
		Balance:       decimal.NewFromInt(1500000),
		SystemName:    externalSystemName,
	}
}

func (a *ExternalAdapter) Synchronize(pendingItems int) domain.SyncOutcome {
	if !a.CheckConnectivity() {
		return domain.SyncOutcome{
			Succeeded:  false,
			SystemName: externalSystemName,
			Diagnostic: "core banking network is unreachable",
		}
	}

	return domain.SyncOutcome{
		Succeeded:   true,
		SystemName:  externalSystemName,
		ItemsSynced: pendingItems,
	}
}
