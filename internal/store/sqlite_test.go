package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gicbank-dev/gicbank/internal/model"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gicbank.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSQLite_AccountRoundTrip(t *testing.T) {
	s, _ := newTestSQLite(t)

	exists, err := s.AccountExists("AC1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.EnsureAccount("AC1"))
	require.NoError(t, s.EnsureAccount("AC1"), "idempotent")

	exists, err = s.AccountExists("AC1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSQLite_TransactionsOrdered(t *testing.T) {
	s, _ := newTestSQLite(t)
	require.NoError(t, s.EnsureAccount("AC1"))

	require.NoError(t, s.AppendTransaction(txn("20230615-01", "AC1", date(2023, 6, 15), model.TxnWithdrawal, "50.00")))
	require.NoError(t, s.AppendTransaction(txn("20230601-02", "AC1", date(2023, 6, 1), model.TxnDeposit, "20.50")))
	require.NoError(t, s.AppendTransaction(txn("20230601-01", "AC1", date(2023, 6, 1), model.TxnDeposit, "100.00")))

	txns, err := s.Transactions("AC1")
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "20230601-01", txns[0].ID)
	assert.Equal(t, "20230601-02", txns[1].ID)
	assert.Equal(t, "20230615-01", txns[2].ID)
	assert.True(t, txns[1].Amount.Equal(dec("20.50")), "decimal survives the TEXT round trip")
	assert.Equal(t, date(2023, 6, 1), txns[1].Date)
	assert.Equal(t, model.TxnDeposit, txns[1].Type)
}

func TestSQLite_TransactionsInRange(t *testing.T) {
	s, _ := newTestSQLite(t)
	require.NoError(t, s.EnsureAccount("AC1"))
	require.NoError(t, s.AppendTransaction(txn("20230531-01", "AC1", date(2023, 5, 31), model.TxnDeposit, "10.00")))
	require.NoError(t, s.AppendTransaction(txn("20230601-01", "AC1", date(2023, 6, 1), model.TxnDeposit, "20.00")))
	require.NoError(t, s.AppendTransaction(txn("20230701-01", "AC1", date(2023, 7, 1), model.TxnDeposit, "40.00")))

	txns, err := s.TransactionsInRange("AC1", date(2023, 6, 1), date(2023, 6, 30))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "20230601-01", txns[0].ID)
}

func TestSQLite_RuleUpsert(t *testing.T) {
	s, _ := newTestSQLite(t)

	require.NoError(t, s.UpsertRule(model.InterestRule{EffectiveDate: date(2023, 6, 1), RuleID: "RULE01", Rate: dec("1.95")}))
	require.NoError(t, s.UpsertRule(model.InterestRule{EffectiveDate: date(2023, 6, 1), RuleID: "RULE02", Rate: dec("2.20")}))

	rules, err := s.Rules()
	require.NoError(t, err)
	require.Len(t, rules, 1, "same-date upsert replaces, never duplicates")
	assert.Equal(t, "RULE02", rules[0].RuleID)
	assert.True(t, rules[0].Rate.Equal(dec("2.20")))
}

func TestSQLite_Reopen(t *testing.T) {
	s, path := newTestSQLite(t)
	require.NoError(t, s.EnsureAccount("AC1"))
	require.NoError(t, s.AppendTransaction(txn("20230601-01", "AC1", date(2023, 6, 1), model.TxnDeposit, "100.00")))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	txns, err := reopened.Transactions("AC1")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "20230601-01", txns[0].ID)
}
