// Package store defines the repository boundary of the ledger core and its
// two implementations: a process-lifetime in-memory store and a sqlite
// file store. The core never talks to storage directly; the ledger and
// interest services go through Store.
package store

import (
	"sort"

	"cloud.google.com/go/civil"

	"github.com/gicbank-dev/gicbank/internal/id"
	"github.com/gicbank-dev/gicbank/internal/model"
)

// Store is the persistence capability the core depends on. Implementations
// must return transactions ordered by date ascending, then by the sequence
// number embedded in the transaction ID.
type Store interface {
	// EnsureAccount creates an empty ledger bucket for an unknown account.
	// Idempotent; no error if the account already exists.
	EnsureAccount(accountID string) error
	AccountExists(accountID string) (bool, error)

	// AppendTransaction appends one immutable transaction.
	AppendTransaction(txn model.Transaction) error
	// Transactions returns every transaction for the account.
	Transactions(accountID string) ([]model.Transaction, error)
	// TransactionsInRange returns transactions with start <= date <= end.
	TransactionsInRange(accountID string, start, end civil.Date) ([]model.Transaction, error)

	// UpsertRule inserts a rule or replaces the one sharing its effective
	// date. Rules returns all rules ordered by effective date ascending.
	UpsertRule(rule model.InterestRule) error
	Rules() ([]model.InterestRule, error)
}

// sortTransactions orders by date ascending, then sequence ascending within
// a day. IDs that fail to parse sort by the raw ID string; Record never
// produces such IDs.
func sortTransactions(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if txns[i].Date != txns[j].Date {
			return txns[i].Date.Before(txns[j].Date)
		}
		_, si, erri := id.ParseTxnID(txns[i].ID)
		_, sj, errj := id.ParseTxnID(txns[j].ID)
		if erri != nil || errj != nil {
			return txns[i].ID < txns[j].ID
		}
		return si < sj
	})
}
