package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ledger *services.Ledger
	ctx    context.Context
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.ledger, _ = newTestLedger(s.T())
	s.ctx = context.Background()
}

// One month holding income 100, expense 40 and a 20 transfer: the transfer
// never shows up in the totals or the category breakdown.
func (s *ReportingServiceTestSuite) TestMonthlySummary_TransfersExcluded() {
	b := mustCreateAccount(s.T(), s.ledger, "B")

	mustCreateTransaction(s.T(), s.ledger, incomeReq(domain.SeedAccountID, d(100), date(2026, time.August, 1)))
	mustCreateTransaction(s.T(), s.ledger, expenseReq(domain.SeedAccountID, d(40), date(2026, time.August, 2)))
	mustCreateTransaction(s.T(), s.ledger, transferReq(domain.SeedAccountID, b.ID, d(20), date(2026, time.August, 3)))

	summary, err := s.ledger.MonthlySummary(s.ctx, time.August, 2026)
	s.Require().NoError(err)

	s.True(summary.StartingBalance.IsZero())
	s.True(summary.TotalIncome.Equal(d(100)))
	s.True(summary.TotalExpenses.Equal(d(40)))
	s.True(summary.SavedAmount.Equal(d(60)))
	s.True(summary.EndingBalance.Equal(d(60)))

	s.Require().Len(summary.CategoryTotals, 2)
	s.True(summary.CategoryTotals["income-salary"].Equal(d(100)))
	s.True(summary.CategoryTotals["expense-food"].Equal(d(40)))
}

// A prior-month transaction is excluded from this month's totals but feeds
// the replayed starting balance.
func (s *ReportingServiceTestSuite) TestMonthlySummary_PriorMonthFeedsStartingBalance() {
	mustCreateTransaction(s.T(), s.ledger, incomeReq(domain.SeedAccountID, d(500), date(2026, time.July, 28)))
	mustCreateTransaction(s.T(), s.ledger, expenseReq(domain.SeedAccountID, d(80), date(2026, time.August, 5)))

	july, err := s.ledger.MonthlySummary(s.ctx, time.July, 2026)
	s.Require().NoError(err)
	s.True(july.StartingBalance.IsZero())
	s.True(july.TotalIncome.Equal(d(500)))
	s.True(july.TotalExpenses.IsZero())

	august, err := s.ledger.MonthlySummary(s.ctx, time.August, 2026)
	s.Require().NoError(err)
	s.True(august.StartingBalance.Equal(d(500)))
	s.True(august.TotalIncome.IsZero())
	s.True(august.TotalExpenses.Equal(d(80)))
	s.True(august.EndingBalance.Equal(d(420)))
}

// Transfers move the starting balance between accounts without changing the
// all-accounts sum.
func (s *ReportingServiceTestSuite) TestMonthlySummary_TransfersNetToZeroAcrossAccounts() {
	b := mustCreateAccount(s.T(), s.ledger, "B")

	mustCreateTransaction(s.T(), s.ledger, incomeReq(domain.SeedAccountID, d(100), date(2026, time.July, 10)))
	mustCreateTransaction(s.T(), s.ledger, transferReq(domain.SeedAccountID, b.ID, d(60), date(2026, time.July, 15)))

	august, err := s.ledger.MonthlySummary(s.ctx, time.August, 2026)
	s.Require().NoError(err)
	s.True(august.StartingBalance.Equal(d(100)))
}

func (s *ReportingServiceTestSuite) TestAccountMonthlySummary_ScopesTotalsOnly() {
	b := mustCreateAccount(s.T(), s.ledger, "B")

	mustCreateTransaction(s.T(), s.ledger, incomeReq(domain.SeedAccountID, d(100), date(2026, time.August, 1)))
	mustCreateTransaction(s.T(), s.ledger, expenseReq(b.ID, d(30), date(2026, time.August, 2)))

	scoped, err := s.ledger.AccountMonthlySummary(s.ctx, b.ID, time.August, 2026)
	s.Require().NoError(err)

	s.True(scoped.TotalIncome.IsZero())
	s.True(scoped.TotalExpenses.Equal(d(30)))
	s.True(scoped.SavedAmount.Equal(d(-30)))
	s.Require().Len(scoped.CategoryTotals, 1)
	s.True(scoped.CategoryTotals["expense-food"].Equal(d(30)))

	// The balance figures stay ledger-wide.
	global, err := s.ledger.MonthlySummary(s.ctx, time.August, 2026)
	s.Require().NoError(err)
	s.True(scoped.StartingBalance.Equal(global.StartingBalance))
	s.True(scoped.EndingBalance.Equal(global.EndingBalance))
}

func (s *ReportingServiceTestSuite) TestSpendingAndIncomeByCategory() {
	mustCreateTransaction(s.T(), s.ledger, incomeReq(domain.SeedAccountID, d(100), date(2026, time.August, 1)))
	mustCreateTransaction(s.T(), s.ledger, expenseReq(domain.SeedAccountID, d(40), date(2026, time.August, 2)))
	mustCreateTransaction(s.T(), s.ledger, expenseReq(domain.SeedAccountID, d(10), date(2026, time.August, 9)))

	spending, err := s.ledger.SpendingByCategory(s.ctx, time.August, 2026)
	s.Require().NoError(err)
	s.Require().Len(spending, 1)
	s.True(spending["expense-food"].Equal(d(50)))

	income, err := s.ledger.IncomeByCategory(s.ctx, time.August, 2026)
	s.Require().NoError(err)
	s.Require().Len(income, 1)
	s.True(income["income-salary"].Equal(d(100)))
}

func (s *ReportingServiceTestSuite) TestTotalBalance() {
	b := mustCreateAccount(s.T(), s.ledger, "B")

	mustCreateTransaction(s.T(), s.ledger, incomeReq(domain.SeedAccountID, d(100), date(2026, time.August, 1)))
	mustCreateTransaction(s.T(), s.ledger, transferReq(domain.SeedAccountID, b.ID, d(30), date(2026, time.August, 2)))

	total, err := s.ledger.TotalBalance(s.ctx)
	s.Require().NoError(err)
	s.True(total.Equal(d(100)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
