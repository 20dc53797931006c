package commands

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gicbank-dev/gicbank/internal/model"
)

func date(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParseTransactionInput(t *testing.T) {
	in, err := parseTransactionInput("20230626 AC001 W 100.00")
	require.NoError(t, err)
	assert.Equal(t, "AC001", in.AccountID)
	assert.Equal(t, date(2023, 6, 26), in.Date)
	assert.Equal(t, model.TxnWithdrawal, in.Type)
	assert.True(t, in.Amount.Equal(dec("100.00")))

	// Type letter is case-insensitive.
	in, err = parseTransactionInput("20230626 AC001 d 50")
	require.NoError(t, err)
	assert.Equal(t, model.TxnDeposit, in.Type)
}

func TestParseTransactionInput_Invalid(t *testing.T) {
	cases := []string{
		"",
		"20230626 AC001 D",             // missing amount
		"2023-06-26 AC001 D 100.00",    // wrong date format
		"20230626 AC001 X 100.00",      // unknown type
		"20230626 AC001 D -25",         // negative amount
		"20230626 AC001 D abc",         // non-numeric amount
		"20230626 AC001 D 100.00 junk", // extra field
	}
	for _, c := range cases {
		_, err := parseTransactionInput(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestParseRuleInput(t *testing.T) {
	in, err := parseRuleInput("20230615 RULE03 2.20")
	require.NoError(t, err)
	assert.Equal(t, date(2023, 6, 15), in.EffectiveDate)
	assert.Equal(t, "RULE03", in.RuleID)
	assert.True(t, in.Rate.Equal(dec("2.20")))
}

func TestParseRuleInput_Invalid(t *testing.T) {
	for _, c := range []string{"", "20230615 RULE03", "banana RULE03 2.20", "20230615 RULE03 pct"} {
		_, err := parseRuleInput(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestParseStatementInput(t *testing.T) {
	in, err := parseStatementInput("AC001 202306")
	require.NoError(t, err)
	assert.Equal(t, "AC001", in.AccountID)
	assert.Equal(t, 2023, in.Year)
	assert.Equal(t, 6, in.Month)
}

func TestParseStatementInput_Invalid(t *testing.T) {
	for _, c := range []string{"", "AC001", "AC001 2023", "AC001 2023xx", "AC001 20230601"} {
		_, err := parseStatementInput(c)
		assert.Error(t, err, "input %q", c)
	}
}
