package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gicbank-dev/gicbank/internal/model"
)

// Header is the CSV header for an exported statement.
const Header = "date,txn_id,type,amount,balance"

// WriteCSV exports a statement's lines as CSV, header first. Dates use the
// same YYYYMMdd form as the rendered table.
func WriteCSV(w io.Writer, st model.Statement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing statement header: %w", err)
	}
	for _, line := range st.Lines {
		row := []string{
			FormatDate(line.Date),
			line.TxnID,
			string(line.Type),
			line.Amount.StringFixed(2),
			line.Balance.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing statement row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing statement: %w", err)
	}
	return nil
}
