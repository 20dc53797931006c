package commands

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/gicbank-dev/gicbank/internal/model"
)

// Raw user-input parsing for the session. The core services re-validate
// business rules; this layer only deals in formats.

// TransactionInput is a parsed "<Date> <Account> <Type> <Amount>" line.
type TransactionInput struct {
	AccountID string
	Date      civil.Date
	Type      model.TxnType
	Amount    decimal.Decimal
}

// RuleInput is a parsed "<Date> <RuleId> <Rate>" line.
type RuleInput struct {
	EffectiveDate civil.Date
	RuleID        string
	Rate          decimal.Decimal
}

// StatementInput is a parsed "<Account> <YYYYMM>" line.
type StatementInput struct {
	AccountID string
	Year      int
	Month     int
}

func parseTransactionInput(line string) (TransactionInput, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return TransactionInput{}, errors.New("Invalid input format. Please use <Date> <Account> <Type> <Amount>.")
	}

	date, err := parseDate(parts[0])
	if err != nil {
		return TransactionInput{}, err
	}

	var kind model.TxnType
	switch strings.ToUpper(parts[2]) {
	case "D":
		kind = model.TxnDeposit
	case "W":
		kind = model.TxnWithdrawal
	default:
		return TransactionInput{}, errors.New("Invalid transaction type. Use 'D' for deposit or 'W' for withdrawal.")
	}

	amount, err := decimal.NewFromString(parts[3])
	if err != nil || !amount.IsPositive() {
		return TransactionInput{}, errors.New("Invalid amount. Please enter a positive number.")
	}

	return TransactionInput{
		AccountID: parts[1],
		Date:      date,
		Type:      kind,
		Amount:    amount,
	}, nil
}

func parseRuleInput(line string) (RuleInput, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return RuleInput{}, errors.New("Invalid input format. Please use <Date> <RuleId> <Rate in %>.")
	}

	date, err := parseDate(parts[0])
	if err != nil {
		return RuleInput{}, err
	}

	rate, err := decimal.NewFromString(parts[2])
	if err != nil {
		return RuleInput{}, errors.New("Invalid interest rate. Rate should be greater than 0 and less than 100.")
	}

	return RuleInput{EffectiveDate: date, RuleID: parts[1], Rate: rate}, nil
}

func parseStatementInput(line string) (StatementInput, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return StatementInput{}, errors.New("Invalid input format. Please use <Account> <Year><Month>.")
	}

	yearMonth := parts[1]
	if len(yearMonth) != 6 {
		return StatementInput{}, errors.New("Invalid year and month. Please use YYYYMM format.")
	}
	year, err := strconv.Atoi(yearMonth[:4])
	if err != nil {
		return StatementInput{}, errors.New("Invalid year and month. Please use YYYYMM format.")
	}
	month, err := strconv.Atoi(yearMonth[4:])
	if err != nil {
		return StatementInput{}, errors.New("Invalid year and month. Please use YYYYMM format.")
	}

	return StatementInput{AccountID: parts[0], Year: year, Month: month}, nil
}

// parseDate parses a YYYYMMdd day.
func parseDate(s string) (civil.Date, error) {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return civil.Date{}, errors.New("Invalid date format. Please use YYYYMMdd format.")
	}
	return civil.DateOf(t), nil
}
