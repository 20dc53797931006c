// Package ledger holds the append-only transaction log and its business
// rules: positive 2-decimal amounts, no withdrawal as an account's first
// transaction, and a balance that never goes negative.
package ledger

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/gicbank-dev/gicbank/internal/id"
	"github.com/gicbank-dev/gicbank/internal/model"
	"github.com/gicbank-dev/gicbank/internal/store"
)

// Service provides ledger operations over a Store.
type Service struct {
	store store.Store
}

// NewService creates a ledger Service.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Record validates and appends one deposit or withdrawal. On any error the
// ledger is left unchanged. The transaction ID is the date as YYYYMMdd plus
// a 2-digit sequence counting prior same-account same-day transactions.
func (s *Service) Record(accountID string, date civil.Date, kind model.TxnType, amount decimal.Decimal) (model.Transaction, error) {
	if kind != model.TxnDeposit && kind != model.TxnWithdrawal {
		return model.Transaction{}, fmt.Errorf("unsupported transaction type %q", kind)
	}
	if !validAmount(amount) {
		return model.Transaction{}, model.ErrInvalidAmount
	}

	if err := s.store.EnsureAccount(accountID); err != nil {
		return model.Transaction{}, err
	}
	existing, err := s.store.Transactions(accountID)
	if err != nil {
		return model.Transaction{}, err
	}

	if kind == model.TxnWithdrawal {
		if len(existing) == 0 {
			return model.Transaction{}, model.ErrFirstTransactionWithdrawal
		}
		if sumSigned(existing).LessThan(amount) {
			return model.Transaction{}, model.ErrInsufficientFunds
		}
	}

	seq := 1
	for _, txn := range existing {
		if txn.Date == date {
			seq++
		}
	}

	txn := model.Transaction{
		ID:        id.FormatTxnID(date, seq),
		AccountID: accountID,
		Date:      date,
		Type:      kind,
		Amount:    amount,
	}
	if err := s.store.AppendTransaction(txn); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// Balance returns deposits minus withdrawals over the whole ledger.
func (s *Service) Balance(accountID string) (decimal.Decimal, error) {
	txns, err := s.store.Transactions(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return sumSigned(txns), nil
}

// BalanceAsOf returns the balance counting only transactions dated on or
// before asOf.
func (s *Service) BalanceAsOf(accountID string, asOf civil.Date) (decimal.Decimal, error) {
	txns, err := s.store.Transactions(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	balance := decimal.Zero
	for _, txn := range txns {
		if txn.Date.After(asOf) {
			continue
		}
		balance = balance.Add(txn.Signed())
	}
	return balance, nil
}

// TransactionsInRange returns transactions with start <= date <= end,
// ordered by date then sequence. An account with no qualifying
// transactions yields an empty slice, not an error.
func (s *Service) TransactionsInRange(accountID string, start, end civil.Date) ([]model.Transaction, error) {
	return s.store.TransactionsInRange(accountID, start, end)
}

// AccountExists reports whether the account has a ledger bucket.
func (s *Service) AccountExists(accountID string) (bool, error) {
	return s.store.AccountExists(accountID)
}

// EnsureAccount creates an empty ledger bucket if the account is unknown.
func (s *Service) EnsureAccount(accountID string) error {
	return s.store.EnsureAccount(accountID)
}

// validAmount requires a positive amount with at most 2 decimal places.
func validAmount(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	cents := amount.Mul(decimal.NewFromInt(100))
	return cents.Equal(cents.Floor())
}

func sumSigned(txns []model.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		balance = balance.Add(txn.Signed())
	}
	return balance
}
