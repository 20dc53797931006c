package statement

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/gicbank-dev/gicbank/internal/model"
)

// FormatDate renders a calendar day as YYYYMMdd, the display and input
// format used throughout the session.
func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// Render produces the statement as a pipe table:
//
//	Account: 12345
//	| Date     | Txn Id      | Type | Amount | Balance |
//	| 20230601 | 20230601-01 | D    | 100.00 | 100.00 |
func Render(st model.Statement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", st.AccountID)
	b.WriteString("| Date     | Txn Id      | Type | Amount | Balance |\n")
	for _, line := range st.Lines {
		fmt.Fprintf(&b, "| %s | %-11s | %-4s | %s | %s |\n",
			FormatDate(line.Date), line.TxnID, string(line.Type),
			line.Amount.StringFixed(2), line.Balance.StringFixed(2))
	}
	return b.String()
}

// RenderRules produces the interest-rule listing as a pipe table, rules in
// ascending effective-date order.
func RenderRules(rules []model.InterestRule) string {
	var b strings.Builder
	b.WriteString("Interest rules:\n")
	b.WriteString("| Date     | RuleId | Rate (%) |\n")
	for _, rule := range rules {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			FormatDate(rule.EffectiveDate), rule.RuleID, rule.Rate.StringFixed(2))
	}
	return b.String()
}
