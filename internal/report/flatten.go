package report

// Flatten walks a report tree in document order and returns render-ready
// display rows. A section's header emits before its nested rows, and its
// summary emits after them at the header's indent. Indent equals the
// recursion depth at which the row was encountered.
func Flatten(rep Report) []DisplayRow {
	var out []DisplayRow
	flattenRows(rep.Rows.Row, 0, &out)
	return out
}

func flattenRows(rows []Row, depth int, out *[]DisplayRow) {
	for _, r := range rows {
		if r.Header != nil {
			*out = append(*out, DisplayRow{
				Label:  r.Header.Label(),
				Amount: formatCell(r.Header.Value()),
				Indent: depth,
				Bold:   true,
			})
		} else if len(r.ColData) > 0 {
			*out = append(*out, DisplayRow{
				Label:  r.ColData[0].Value,
				Amount: formatCell(dataValue(r.ColData)),
				Indent: depth,
				Bold:   false,
			})
		}

		flattenRows(r.children(), depth+1, out)

		if r.Summary != nil {
			*out = append(*out, DisplayRow{
				Label:  r.Summary.Label(),
				Amount: formatCell(r.Summary.Value()),
				Indent: depth,
				Bold:   true,
			})
		}
	}
}

func dataValue(cells []Cell) string {
	if len(cells) < 2 {
		return ""
	}
	return cells[1].Value
}

// formatCell renders a raw cell value as currency, or "" when the cell is
// empty or unparsable.
func formatCell(raw string) string {
	v, ok := ParseAmount(raw)
	if !ok {
		return ""
	}
	return FormatAmount(v)
}
