package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finhub-dev/finhub/internal/notes"
)

// GenericParser parses the plain "vendor,date,amount,category,memo" export
// most expense tools can produce.
type GenericParser struct{}

const (
	genericDateFormat = "2006-01-02"
	genericNumFields  = 5
	genericColVendor  = 0
	genericColDate    = 1
	genericColAmount  = 2
	genericColCat     = 3
	genericColMemo    = 4
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic receipt CSV and returns Receipts. Amounts are
// normalized to positive expense values; exports that encode spend as
// negative numbers import the same as ones that do not.
func (p *GenericParser) Parse(r io.Reader) ([]notes.Receipt, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading receipt CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var receipts []notes.Receipt
	for i, rec := range records[1:] {
		receipt, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

func parseGenericRow(rec []string) (notes.Receipt, error) {
	date, err := time.Parse(genericDateFormat, rec[genericColDate])
	if err != nil {
		return notes.Receipt{}, fmt.Errorf("parsing date %q: %w", rec[genericColDate], err)
	}

	amount, err := decimal.NewFromString(rec[genericColAmount])
	if err != nil {
		return notes.Receipt{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}

	return notes.Receipt{
		Vendor:   rec[genericColVendor],
		Amount:   amount.Abs(),
		Date:     date.Format(genericDateFormat),
		Category: rec[genericColCat],
		Memo:     rec[genericColMemo],
	}, nil
}
