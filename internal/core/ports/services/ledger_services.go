package services

// LedgerSvcFacade is the full command/query surface of the ledger engine,
// consumed by presentation code.
type LedgerSvcFacade interface {
	AccountSvcFacade
	CategorySvcFacade
	TransactionSvcFacade
	BudgetSvcFacade
	ReportingSvcFacade
}
