package model

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// StatementLine is one display row of a monthly statement: a real
// transaction, or the synthetic interest line dated the last day of the
// month (TxnID empty, Type TxnInterest).
type StatementLine struct {
	Date    civil.Date
	TxnID   string
	Type    TxnType
	Amount  decimal.Decimal
	Balance decimal.Decimal // running balance after this line
}

// Statement is the ordered set of lines for one account and month.
type Statement struct {
	AccountID string
	Year      int
	Month     time.Month
	Opening   decimal.Decimal // balance carried in from prior periods
	Lines     []StatementLine
}

// Closing returns the balance after the last line, or the opening balance
// for a month with no activity.
func (s Statement) Closing() decimal.Decimal {
	if len(s.Lines) == 0 {
		return s.Opening
	}
	return s.Lines[len(s.Lines)-1].Balance
}
