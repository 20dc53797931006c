package interest

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/gicbank-dev/gicbank/internal/model"
)

// DefaultBasis is the day-count denominator for annual rates.
const DefaultBasis = 365

// Engine computes interest over a closed date interval by partitioning it
// into maximal sub-intervals of constant (rate, balance).
type Engine struct {
	table *Table
	basis int
}

// NewEngine creates an accrual Engine. A basis <= 0 falls back to
// DefaultBasis.
func NewEngine(table *Table, basis int) *Engine {
	if basis <= 0 {
		basis = DefaultBasis
	}
	return &Engine{table: table, basis: basis}
}

// Accrue computes the interest earned over [start, end]. opening is the
// balance carried in from before start; txns are the in-period
// transactions, ordered by date. A transaction takes effect from the start
// of its own day. Each sub-interval of d days at balance b and annual rate
// r contributes b * (r/100) * (d/basis); the total is rounded to 2 decimal
// places once, at the end.
func (e *Engine) Accrue(opening decimal.Decimal, txns []model.Transaction, start, end civil.Date) (decimal.Decimal, error) {
	if end.Before(start) {
		return decimal.Zero, nil
	}
	rules, err := e.table.AllRulesOrdered()
	if err != nil {
		return decimal.Zero, err
	}

	points := breakpoints(txns, rules, start, end)

	// Sum balance*rate*days exactly; divide and round only at the end.
	total := decimal.Zero
	balance := opening
	next := 0
	for i, p := range points {
		for next < len(txns) && !txns[next].Date.After(p) {
			balance = balance.Add(txns[next].Signed())
			next++
		}
		segEnd := end
		if i+1 < len(points) {
			segEnd = points[i+1].AddDays(-1)
		}
		days := segEnd.DaysSince(p) + 1
		rate := rateOn(rules, p)
		total = total.Add(balance.Mul(rate).Mul(decimal.NewFromInt(int64(days))))
	}

	divisor := decimal.NewFromInt(int64(100 * e.basis))
	return total.Div(divisor).Round(2), nil
}

// breakpoints returns the ascending sub-interval start days: the period
// start plus every in-period transaction date and rule effective date.
func breakpoints(txns []model.Transaction, rules []model.InterestRule, start, end civil.Date) []civil.Date {
	seen := map[civil.Date]bool{start: true}
	for _, txn := range txns {
		if txn.Date.After(start) && !txn.Date.After(end) {
			seen[txn.Date] = true
		}
	}
	for _, rule := range rules {
		if rule.EffectiveDate.After(start) && !rule.EffectiveDate.After(end) {
			seen[rule.EffectiveDate] = true
		}
	}
	points := make([]civil.Date, 0, len(seen))
	for d := range seen {
		points = append(points, d)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Before(points[j]) })
	return points
}
