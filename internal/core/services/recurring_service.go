package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifedash/finances/internal/core/domain"
)

// MaterializeRecurring creates, at most once per calendar month, a fresh
// instance of every transaction flagged recurring. A template is satisfied
// for the month when any recurring transaction with the same (description,
// category, account) is already dated within it, so repeated invocations in
// the same month create nothing. Created instances are committed through the
// normal posting path and returned.
func (l *Ledger) MaterializeRecurring(ctx context.Context, now time.Time) ([]domain.Transaction, error) {
	month := now.Month()
	year := now.Year()

	l.mu.Lock()
	defer l.mu.Unlock()

	created := make([]domain.Transaction, 0)
	for _, template := range l.transactions {
		if !template.IsRecurring {
			continue
		}
		if l.hasRecurringInstance(template, month, year) {
			continue
		}

		instance := template
		instance.ID = uuid.NewString()
		instance.Date = time.Date(year, month, now.Day(), 0, 0, 0, 0, time.UTC)

		l.transactions = append(l.transactions, instance)
		l.postTransaction(instance, false)
		created = append(created, instance)
	}

	if len(created) > 0 {
		l.logger.Info("Materialized recurring transactions",
			slog.Int("count", len(created)),
			slog.Int("year", year),
			slog.String("month", month.String()))
		if err := l.persist(ctx); err != nil {
			return nil, err
		}
	}

	return created, nil
}

// hasRecurringInstance reports whether a recurring transaction matching the
// template's (description, category, account) is already dated in the given
// month. Callers must hold l.mu.
func (l *Ledger) hasRecurringInstance(template domain.Transaction, month time.Month, year int) bool {
	for _, t := range l.transactions {
		if !t.IsRecurring {
			continue
		}
		if !t.InMonth(month, year) {
			continue
		}
		if t.Description == template.Description &&
			t.CategoryID == template.CategoryID &&
			t.AccountID == template.AccountID {
			return true
		}
	}
	return false
}
