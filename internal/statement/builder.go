// Package statement composes the ledger and the accrual engine into
// ordered monthly statements and renders them for display.
package statement

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/gicbank-dev/gicbank/internal/interest"
	"github.com/gicbank-dev/gicbank/internal/ledger"
	"github.com/gicbank-dev/gicbank/internal/model"
)

// Builder builds monthly statements. The ledger and engine are passed in
// explicitly; there is no process-wide wiring.
type Builder struct {
	ledger *ledger.Service
	engine *interest.Engine
}

// NewBuilder creates a statement Builder.
func NewBuilder(l *ledger.Service, e *interest.Engine) *Builder {
	return &Builder{ledger: l, engine: e}
}

// Build produces the statement for one account and calendar month: one
// line per transaction with a running balance starting from the balance
// carried in from prior periods, plus a synthetic interest line dated the
// last day of the month when the accrued interest is positive.
func (b *Builder) Build(accountID string, year, month int) (model.Statement, error) {
	if year < 1 || month < 1 || month > 12 {
		return model.Statement{}, model.ErrInvalidPeriod
	}

	start := civil.Date{Year: year, Month: time.Month(month), Day: 1}
	end := start.AddDays(daysIn(year, time.Month(month)) - 1)

	opening, err := b.ledger.BalanceAsOf(accountID, start.AddDays(-1))
	if err != nil {
		return model.Statement{}, err
	}
	txns, err := b.ledger.TransactionsInRange(accountID, start, end)
	if err != nil {
		return model.Statement{}, err
	}

	st := model.Statement{
		AccountID: accountID,
		Year:      year,
		Month:     time.Month(month),
		Opening:   opening,
	}

	balance := opening
	for _, txn := range txns {
		balance = balance.Add(txn.Signed())
		st.Lines = append(st.Lines, model.StatementLine{
			Date:    txn.Date,
			TxnID:   txn.ID,
			Type:    txn.Type,
			Amount:  txn.Amount,
			Balance: balance,
		})
	}

	accrued, err := b.engine.Accrue(opening, txns, start, end)
	if err != nil {
		return model.Statement{}, err
	}
	if accrued.IsPositive() {
		st.Lines = append(st.Lines, model.StatementLine{
			Date:    end,
			Type:    model.TxnInterest,
			Amount:  accrued,
			Balance: balance.Add(accrued),
		})
	}
	return st, nil
}

// daysIn returns the number of days in a month. Day 0 of the following
// month normalizes to this month's last day.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
