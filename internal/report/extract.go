package report

import (
	"math"
	"sort"
	"strings"
)

// palette is the fixed chart color cycle, assigned to breakdown slices by
// rank.
var palette = [...]string{
	"#6366F1", "#22C55E", "#F59E0B", "#EF4444",
	"#06B6D4", "#A855F7", "#EC4899", "#84CC16",
}

// maxBreakdownSlices caps how many categories a breakdown chart shows.
const maxBreakdownSlices = 8

// SectionTotal scans top-level rows for a header or summary whose label
// contains target (case-insensitive) and returns its parsed total. The first
// match in document order wins; no match returns 0.
//
// Matching is deliberately naive English substring matching — the upstream
// report labels are not localized and the mobile client shipped with the
// same behavior.
func SectionTotal(rep Report, target string) float64 {
	t := strings.ToLower(target)
	for _, r := range rep.Rows.Row {
		if r.Header != nil && strings.Contains(strings.ToLower(r.Header.Label()), t) {
			// Section headers often carry no total of their own; fall back
			// to the section's summary amount.
			if v, ok := ParseAmount(r.Header.Value()); ok {
				return v
			}
			v, _ := ParseAmount(r.Summary.Value())
			return v
		}
		if r.Summary != nil && strings.Contains(strings.ToLower(r.Summary.Label()), t) {
			v, _ := ParseAmount(r.Summary.Value())
			return v
		}
	}
	return 0
}

// ExpenseBreakdown collects the immediate children of every row whose header
// label contains "expense" or "cost". Entries with non-positive amounts are
// dropped; the rest are sorted descending, capped, and assigned palette
// colors by rank.
func ExpenseBreakdown(rep Report) []BreakdownSlice {
	var slices []BreakdownSlice
	for _, r := range rep.Rows.Row {
		label := strings.ToLower(r.Header.Label())
		if !strings.Contains(label, "expense") && !strings.Contains(label, "cost") {
			continue
		}
		for _, child := range r.children() {
			name, raw := childNameValue(child)
			if name == "" {
				continue
			}
			v, ok := ParseAmount(raw)
			if !ok || v <= 0 {
				continue
			}
			slices = append(slices, BreakdownSlice{Name: name, Value: math.Abs(v)})
		}
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value > slices[j].Value
	})
	if len(slices) > maxBreakdownSlices {
		slices = slices[:maxBreakdownSlices]
	}
	for i := range slices {
		slices[i].Color = palette[i%len(palette)]
	}
	return slices
}

// CashflowSections maps top-level rows that carry both a header label and a
// summary value onto the three canonical cash-flow activities, preserving
// the signed amount. Rows that match none of the activity names are skipped.
func CashflowSections(rep Report) []CashflowSection {
	var sections []CashflowSection
	for _, r := range rep.Rows.Row {
		label := strings.ToLower(r.Header.Label())
		if label == "" {
			continue
		}
		raw := r.Summary.Value()
		if raw == "" {
			continue
		}
		name := ""
		switch {
		case strings.Contains(label, "operating"):
			name = "Operating"
		case strings.Contains(label, "investing"):
			name = "Investing"
		case strings.Contains(label, "financing"):
			name = "Financing"
		default:
			continue
		}
		v, ok := ParseAmount(raw)
		if !ok {
			continue
		}
		sections = append(sections, CashflowSection{Name: name, Value: v})
	}
	return sections
}

// childNameValue extracts the display name and raw amount from an immediate
// breakdown child, which may be a plain data row or a nested sub-section.
func childNameValue(r Row) (name, raw string) {
	if r.Header != nil {
		raw = r.Header.Value()
		if raw == "" {
			raw = r.Summary.Value()
		}
		return r.Header.Label(), raw
	}
	if len(r.ColData) == 0 {
		return "", ""
	}
	return r.ColData[0].Value, dataValue(r.ColData)
}
