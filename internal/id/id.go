package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// FormatTxnID returns a transaction ID like "20230601-01": the transaction
// date as YYYYMMdd plus a 2-digit per-(account, day) sequence, 1-based.
func FormatTxnID(date civil.Date, seq int) string {
	return fmt.Sprintf("%04d%02d%02d-%02d", date.Year, int(date.Month), date.Day, seq)
}

// ParseTxnID parses "20230601-01" into its date and sequence number.
func ParseTxnID(id string) (date civil.Date, seq int, err error) {
	day, num, ok := strings.Cut(id, "-")
	if !ok || len(day) != 8 {
		return civil.Date{}, 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}

	year, err := strconv.Atoi(day[:4])
	if err != nil {
		return civil.Date{}, 0, fmt.Errorf("invalid year in transaction ID %q: %w", id, err)
	}
	month, err := strconv.Atoi(day[4:6])
	if err != nil {
		return civil.Date{}, 0, fmt.Errorf("invalid month in transaction ID %q: %w", id, err)
	}
	dom, err := strconv.Atoi(day[6:8])
	if err != nil {
		return civil.Date{}, 0, fmt.Errorf("invalid day in transaction ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(num)
	if err != nil {
		return civil.Date{}, 0, fmt.Errorf("invalid sequence in transaction ID %q: %w", id, err)
	}

	date = civil.Date{Year: year, Month: time.Month(month), Day: dom}
	if !date.IsValid() {
		return civil.Date{}, 0, fmt.Errorf("invalid date in transaction ID %q", id)
	}
	return date, seq, nil
}
