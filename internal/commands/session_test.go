package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gicbank-dev/gicbank/internal/config"
	"github.com/gicbank-dev/gicbank/internal/store"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	sess := NewSession(config.Default("AwesomeGIC Bank"), store.NewMemory(), strings.NewReader(input), &out)
	require.NoError(t, sess.Run())
	return out.String()
}

func TestSession_EndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"T",
		"20230601 12345 D 100.00",
		"20230615 12345 W 50.00",
		"",
		"I",
		"20230601 RULE03 3.65",
		"P",
		"12345 202306",
		"Q",
	}, "\n") + "\n"

	out := runSession(t, input)

	assert.Contains(t, out, "Welcome to AwesomeGIC Bank!")
	assert.Equal(t, 2, strings.Count(out, "Transaction recorded successfully."))
	assert.Contains(t, out, "| 20230601 | RULE03 | 3.65 |")
	assert.Contains(t, out, "Account: 12345")
	assert.Contains(t, out, "| 20230601 | 20230601-01 | D    | 100.00 | 100.00 |")
	assert.Contains(t, out, "| 20230615 | 20230615-01 | W    | 50.00 | 50.00 |")
	assert.Contains(t, out, "| 20230630 |             | I    | 0.22 | 50.22 |")
	assert.Contains(t, out, "Thank you for banking with AwesomeGIC Bank.")
}

func TestSession_FirstWithdrawalRejected(t *testing.T) {
	input := strings.Join([]string{
		"T",
		"20230601 77777 W 10.00",
		"",
		"Q",
	}, "\n") + "\n"

	out := runSession(t, input)
	assert.Contains(t, out, "The first transaction on an account cannot be a withdrawal.")
	assert.NotContains(t, out, "Transaction recorded successfully.")
}

func TestSession_InsufficientBalance(t *testing.T) {
	input := strings.Join([]string{
		"T",
		"20230601 88888 D 20.00",
		"20230602 88888 W 30.00",
		"",
		"Q",
	}, "\n") + "\n"

	out := runSession(t, input)
	assert.Contains(t, out, "Insufficient balance.")
}

func TestSession_InvalidRuleRate(t *testing.T) {
	input := strings.Join([]string{
		"I",
		"20230601 RULE01 100",
		"Q",
	}, "\n") + "\n"

	out := runSession(t, input)
	assert.Contains(t, out, "Invalid interest rate. Rate should be greater than 0 and less than 100.")
}

func TestSession_InvalidStatementMonth(t *testing.T) {
	input := strings.Join([]string{
		"P",
		"12345 202313",
		"Q",
	}, "\n") + "\n"

	out := runSession(t, input)
	assert.Contains(t, out, "Invalid year and month. Please use YYYYMM format.")
}

func TestSession_InvalidMenuChoice(t *testing.T) {
	out := runSession(t, "Z\nQ\n")
	assert.Contains(t, out, "Invalid input. Please try again.")
}

func TestSession_EOFEndsSession(t *testing.T) {
	out := runSession(t, "")
	assert.Contains(t, out, "What would you like to do?")
}
