package model

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// TxnType classifies ledger transactions.
type TxnType string

const (
	TxnDeposit    TxnType = "D"
	TxnWithdrawal TxnType = "W"
	// TxnInterest only ever appears on statement lines; it is synthesized by
	// the statement builder and never recorded in the ledger.
	TxnInterest TxnType = "I"
)

// Transaction is one immutable ledger entry. Created only through
// ledger.Service.Record; never mutated afterwards.
type Transaction struct {
	ID        string // "YYYYMMdd-NN", NN = per-(account, day) sequence
	AccountID string
	Date      civil.Date
	Type      TxnType
	Amount    decimal.Decimal // always positive; sign comes from Type
}

// Signed returns the amount with the sign implied by the transaction type
// (deposits positive, withdrawals negative).
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TxnWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
