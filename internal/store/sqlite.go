package store

import (
	"database/sql"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"

	"github.com/gicbank-dev/gicbank/internal/id"
	"github.com/gicbank-dev/gicbank/internal/model"
)

// migrations is the sqlite schema. Each string is a single statement.
// Dates are stored as "YYYY-MM-DD" TEXT (lexicographic order == date
// order) and amounts as exact decimal TEXT.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		account_id TEXT PRIMARY KEY
	)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		account_id TEXT NOT NULL REFERENCES accounts(account_id),
		txn_id     TEXT NOT NULL,
		txn_date   TEXT NOT NULL,
		seq        INTEGER NOT NULL,
		type       TEXT NOT NULL,
		amount     TEXT NOT NULL,
		PRIMARY KEY (account_id, txn_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_account_date
		ON transactions(account_id, txn_date, seq)`,

	`CREATE TABLE IF NOT EXISTS interest_rules (
		effective_date TEXT PRIMARY KEY,
		rule_id        TEXT NOT NULL,
		rate           TEXT NOT NULL
	)`,
}

// SQLite is a file-backed Store.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a sqlite store at path and applies
// the schema.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storageErr("opening database", err)
	}
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, storageErr("applying schema", err)
		}
	}
	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) EnsureAccount(accountID string) error {
	_, err := s.db.Exec(
		`INSERT INTO accounts (account_id) VALUES (?) ON CONFLICT DO NOTHING`,
		accountID)
	if err != nil {
		return storageErr("ensuring account", err)
	}
	return nil
}

func (s *SQLite) AccountExists(accountID string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM accounts WHERE account_id = ?`,
		accountID).Scan(&n)
	if err != nil {
		return false, storageErr("checking account", err)
	}
	return n > 0, nil
}

func (s *SQLite) AppendTransaction(txn model.Transaction) error {
	_, seq, err := id.ParseTxnID(txn.ID)
	if err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO transactions (account_id, txn_id, txn_date, seq, type, amount)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		txn.AccountID, txn.ID, txn.Date.String(), seq, string(txn.Type), txn.Amount.String())
	if err != nil {
		return storageErr("appending transaction", err)
	}
	return nil
}

func (s *SQLite) Transactions(accountID string) ([]model.Transaction, error) {
	return s.queryTransactions(
		`SELECT account_id, txn_id, txn_date, type, amount FROM transactions
		 WHERE account_id = ? ORDER BY txn_date, seq`,
		accountID)
}

func (s *SQLite) TransactionsInRange(accountID string, start, end civil.Date) ([]model.Transaction, error) {
	return s.queryTransactions(
		`SELECT account_id, txn_id, txn_date, type, amount FROM transactions
		 WHERE account_id = ? AND txn_date >= ? AND txn_date <= ?
		 ORDER BY txn_date, seq`,
		accountID, start.String(), end.String())
}

func (s *SQLite) queryTransactions(query string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storageErr("reading transactions", err)
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var date, typ, amount string
		if err := rows.Scan(&txn.AccountID, &txn.ID, &date, &typ, &amount); err != nil {
			return nil, storageErr("scanning transaction", err)
		}
		if txn.Date, err = civil.ParseDate(date); err != nil {
			return nil, storageErr("parsing transaction date", err)
		}
		if txn.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, storageErr("parsing transaction amount", err)
		}
		txn.Type = model.TxnType(typ)
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("reading transactions", err)
	}
	return txns, nil
}

func (s *SQLite) UpsertRule(rule model.InterestRule) error {
	_, err := s.db.Exec(
		`INSERT INTO interest_rules (effective_date, rule_id, rate) VALUES (?, ?, ?)
		 ON CONFLICT(effective_date) DO UPDATE SET rule_id = excluded.rule_id, rate = excluded.rate`,
		rule.EffectiveDate.String(), rule.RuleID, rule.Rate.String())
	if err != nil {
		return storageErr("upserting rule", err)
	}
	return nil
}

func (s *SQLite) Rules() ([]model.InterestRule, error) {
	rows, err := s.db.Query(
		`SELECT effective_date, rule_id, rate FROM interest_rules ORDER BY effective_date`)
	if err != nil {
		return nil, storageErr("reading rules", err)
	}
	defer rows.Close()

	var rules []model.InterestRule
	for rows.Next() {
		var rule model.InterestRule
		var date, rate string
		if err := rows.Scan(&date, &rule.RuleID, &rate); err != nil {
			return nil, storageErr("scanning rule", err)
		}
		if rule.EffectiveDate, err = civil.ParseDate(date); err != nil {
			return nil, storageErr("parsing rule date", err)
		}
		if rule.Rate, err = decimal.NewFromString(rate); err != nil {
			return nil, storageErr("parsing rule rate", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("reading rules", err)
	}
	return rules, nil
}

// storageErr tags infrastructure failures with model.ErrStorageUnavailable
// so callers can distinguish them from business-rule rejections.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, model.ErrStorageUnavailable, err)
}
