// Package report parses and flattens the nested row trees QuickBooks Online
// returns for financial reports (profit and loss, balance sheet, cash flow,
// trial balance). Every function in this package is total: malformed or
// partial input yields an empty result, never an error or panic, because the
// report format is owned by the upstream service and rows routinely arrive
// with fields missing.
package report

// Report is the top-level report payload. Only the row tree is modeled;
// header metadata (report name, date range, columns) is passed through
// untouched by callers that need it.
type Report struct {
	Rows RowGroup `json:"Rows"`
}

// RowGroup wraps the recursive row list.
type RowGroup struct {
	Row []Row `json:"Row"`
}

// Row is one node in the report tree. Any combination of fields may be
// absent: section rows carry a Header and nested Rows, data rows carry
// ColData, and sections usually close with a Summary.
type Row struct {
	Header  *Header   `json:"Header,omitempty"`
	Rows    *RowGroup `json:"Rows,omitempty"`
	ColData []Cell    `json:"ColData,omitempty"`
	Summary *Summary  `json:"Summary,omitempty"`
}

// Header labels a section row. ColData[0] is the label; ColData[1], when
// present, is the section total.
type Header struct {
	ColData []Cell `json:"ColData,omitempty"`
}

// Summary closes a section row. ColData[0] is the label ("Total Income"),
// ColData[1] the amount.
type Summary struct {
	ColData []Cell `json:"ColData,omitempty"`
}

// Cell is a single report cell value, always a string on the wire.
type Cell struct {
	Value string `json:"value"`
}

// DisplayRow is a flattened, render-ready report line.
type DisplayRow struct {
	Label  string
	Amount string // pre-formatted, empty when the cell has no parsable value
	Indent int    // recursion depth, root = 0
	Bold   bool   // true for header and summary rows
}

// BreakdownSlice is one category in an expense breakdown chart.
type BreakdownSlice struct {
	Name  string
	Value float64 // absolute amount, always > 0
	Color string
}

// CashflowSection is one canonical cash-flow activity section.
type CashflowSection struct {
	Name  string // "Operating", "Investing" or "Financing"
	Value float64
}

// Label returns the header's label cell, or "" when absent.
func (h *Header) Label() string {
	if h == nil || len(h.ColData) == 0 {
		return ""
	}
	return h.ColData[0].Value
}

// Value returns the header's amount cell, or "" when absent.
func (h *Header) Value() string {
	if h == nil || len(h.ColData) < 2 {
		return ""
	}
	return h.ColData[1].Value
}

// Label returns the summary's label cell, or "" when absent.
func (s *Summary) Label() string {
	if s == nil || len(s.ColData) == 0 {
		return ""
	}
	return s.ColData[0].Value
}

// Value returns the summary's amount cell, or "" when absent.
func (s *Summary) Value() string {
	if s == nil || len(s.ColData) < 2 {
		return ""
	}
	return s.ColData[1].Value
}

func (r Row) children() []Row {
	if r.Rows == nil {
		return nil
	}
	return r.Rows.Row
}
