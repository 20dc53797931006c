package model

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// InterestRule sets the annual interest rate in force from EffectiveDate
// (inclusive) until a later-dated rule takes over. At most one rule exists
// per date; re-defining a date replaces rate and label in place.
type InterestRule struct {
	EffectiveDate civil.Date
	RuleID        string          // display label, e.g. "RULE03"
	Rate          decimal.Decimal // annual percentage, 0 < Rate < 100
}
