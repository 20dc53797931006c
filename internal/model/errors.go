package model

import "errors"

// Business-rule errors returned by the core services. All are recoverable
// by the caller and none leaves partial state behind.
var (
	// ErrInvalidAmount rejects non-positive amounts or amounts with more
	// than 2 decimal places.
	ErrInvalidAmount = errors.New("amount must be positive with at most 2 decimal places")

	// ErrFirstTransactionWithdrawal rejects a withdrawal as the first
	// transaction ever recorded for an account.
	ErrFirstTransactionWithdrawal = errors.New("first transaction on an account cannot be a withdrawal")

	// ErrInsufficientFunds rejects a withdrawal that would drive the
	// balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidRate rejects interest rates outside (0, 100).
	ErrInvalidRate = errors.New("interest rate must be between 0 and 100 exclusive")

	// ErrInvalidPeriod rejects a statement request for a nonexistent
	// calendar month.
	ErrInvalidPeriod = errors.New("invalid statement period")
)

// ErrStorageUnavailable wraps infrastructure failures from a repository
// implementation, so callers can tell them apart from business rejections.
var ErrStorageUnavailable = errors.New("storage unavailable")
