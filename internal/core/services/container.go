package services

import (
	portsrepo "github.com/finledger/fin_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finledger/fin_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires the service graph over a unit-of-work runner.
func NewServiceContainer(runner portsrepo.TxRunner) *portssvc.ServiceContainer {
	ledger := NewLedgerService(runner)
	return &portssvc.ServiceContainer{
		Ledger:    ledger,
		Reporting: NewReportingService(ledger),
	}
}
