package store

import (
	"cloud.google.com/go/civil"

	"github.com/gicbank-dev/gicbank/internal/model"
)

// Memory is the default Store: plain in-process maps, retained for the
// process lifetime. It never fails.
type Memory struct {
	accounts map[string][]model.Transaction
	rules    []model.InterestRule
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{accounts: make(map[string][]model.Transaction)}
}

func (m *Memory) EnsureAccount(accountID string) error {
	if _, ok := m.accounts[accountID]; !ok {
		m.accounts[accountID] = nil
	}
	return nil
}

func (m *Memory) AccountExists(accountID string) (bool, error) {
	_, ok := m.accounts[accountID]
	return ok, nil
}

func (m *Memory) AppendTransaction(txn model.Transaction) error {
	m.accounts[txn.AccountID] = append(m.accounts[txn.AccountID], txn)
	return nil
}

func (m *Memory) Transactions(accountID string) ([]model.Transaction, error) {
	txns := make([]model.Transaction, len(m.accounts[accountID]))
	copy(txns, m.accounts[accountID])
	sortTransactions(txns)
	return txns, nil
}

func (m *Memory) TransactionsInRange(accountID string, start, end civil.Date) ([]model.Transaction, error) {
	var txns []model.Transaction
	for _, txn := range m.accounts[accountID] {
		if txn.Date.Before(start) || txn.Date.After(end) {
			continue
		}
		txns = append(txns, txn)
	}
	sortTransactions(txns)
	return txns, nil
}

func (m *Memory) UpsertRule(rule model.InterestRule) error {
	for i, r := range m.rules {
		if r.EffectiveDate == rule.EffectiveDate {
			m.rules[i] = rule
			return nil
		}
	}
	// Insert preserving ascending effective-date order.
	at := len(m.rules)
	for i, r := range m.rules {
		if rule.EffectiveDate.Before(r.EffectiveDate) {
			at = i
			break
		}
	}
	m.rules = append(m.rules, model.InterestRule{})
	copy(m.rules[at+1:], m.rules[at:])
	m.rules[at] = rule
	return nil
}

func (m *Memory) Rules() ([]model.InterestRule, error) {
	rules := make([]model.InterestRule, len(m.rules))
	copy(rules, m.rules)
	return rules, nil
}
