// Package interest holds the dated annual-rate table and the piecewise
// accrual engine that statements use to compute a month's interest.
package interest

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/gicbank-dev/gicbank/internal/model"
	"github.com/gicbank-dev/gicbank/internal/store"
)

var hundred = decimal.NewFromInt(100)

// Table answers "what annual rate applies on day D" from a set of dated
// rules kept in the store, ordered by effective date.
type Table struct {
	store store.Store
}

// NewTable creates a rule Table.
func NewTable(st store.Store) *Table {
	return &Table{store: st}
}

// Upsert inserts a rule, or replaces the rate and label of the rule already
// keyed by effective. The rate is an annual percentage strictly between 0
// and 100.
func (t *Table) Upsert(effective civil.Date, ruleID string, rate decimal.Decimal) (model.InterestRule, error) {
	if !rate.IsPositive() || rate.GreaterThanOrEqual(hundred) {
		return model.InterestRule{}, model.ErrInvalidRate
	}
	rule := model.InterestRule{EffectiveDate: effective, RuleID: ruleID, Rate: rate}
	if err := t.store.UpsertRule(rule); err != nil {
		return model.InterestRule{}, err
	}
	return rule, nil
}

// RateOn returns the rate in force on d: the rate of the latest rule with
// an effective date on or before d, or zero if no rule applies yet. A rule
// dated after d never applies.
func (t *Table) RateOn(d civil.Date) (decimal.Decimal, error) {
	rules, err := t.store.Rules()
	if err != nil {
		return decimal.Zero, err
	}
	return rateOn(rules, d), nil
}

// AllRulesOrdered returns every rule, ascending by effective date.
func (t *Table) AllRulesOrdered() ([]model.InterestRule, error) {
	return t.store.Rules()
}

// rateOn scans ascending rules for the last one effective on or before d.
func rateOn(rules []model.InterestRule, d civil.Date) decimal.Decimal {
	rate := decimal.Zero
	for _, r := range rules {
		if r.EffectiveDate.After(d) {
			break
		}
		rate = r.Rate
	}
	return rate
}
