package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionTotal_MatchesSummary(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Income", "", []Row{data("Sales", "1,234.50")}, summary("Total Income", "1,234.50")),
	}}}

	assert.InDelta(t, 1234.5, SectionTotal(rep, "income"), 0.0001)
}

func TestSectionTotal_NoMatch(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Expenses", "", nil, summary("Total Expenses", "900")),
	}}}

	assert.Zero(t, SectionTotal(rep, "income"))
	assert.Zero(t, SectionTotal(Report{}, "income"))
}

func TestSectionTotal_FirstMatchWins(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Income", "", nil, summary("Total Income", "100")),
		section("Other Income", "", nil, summary("Total Other Income", "999")),
	}}}

	assert.InDelta(t, 100, SectionTotal(rep, "income"), 0.0001)
}

func TestSectionTotal_HeaderCarriesTotal(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Net Income", "4,000.25", nil, nil),
	}}}

	assert.InDelta(t, 4000.25, SectionTotal(rep, "net income"), 0.0001)
}

func TestExpenseBreakdown_FiltersSortsAndCaps(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Expenses", "", []Row{
			data("Rent", "500"),
			data("Refund", "-50"),
			data("Software", "300"),
			data("Nothing", "0"),
			data("Payroll", "700"),
		}, summary("Total Expenses", "1450")),
	}}}

	slices := ExpenseBreakdown(rep)
	require.Len(t, slices, 3)
	assert.Equal(t, "Payroll", slices[0].Name)
	assert.Equal(t, "Rent", slices[1].Name)
	assert.Equal(t, "Software", slices[2].Name)
	for _, s := range slices {
		assert.Positive(t, s.Value)
		assert.NotEmpty(t, s.Color)
	}
}

func TestExpenseBreakdown_CostSectionsCount(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Cost of Goods Sold", "", []Row{
			data("Materials", "250.00"),
			data("Credit memo", "(40.00)"), // parenthesized = negative, dropped
		}, nil),
	}}}

	slices := ExpenseBreakdown(rep)
	require.Len(t, slices, 1)
	assert.Equal(t, "Materials", slices[0].Name)
	assert.InDelta(t, 250, slices[0].Value, 0.0001)
}

func TestExpenseBreakdown_CapsAtEight(t *testing.T) {
	children := make([]Row, 12)
	for i := range children {
		children[i] = data(string(rune('A'+i)), "100")
	}
	rep := Report{Rows: RowGroup{Row: []Row{section("Expenses", "", children, nil)}}}

	slices := ExpenseBreakdown(rep)
	assert.Len(t, slices, 8)
}

func TestExpenseBreakdown_IgnoresNonExpenseSections(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Income", "", []Row{data("Sales", "100")}, nil),
	}}}

	assert.Empty(t, ExpenseBreakdown(rep))
}

func TestCashflowSections(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Cash flows from operating activities", "", nil, summary("Net cash provided by operating activities", "1200.00")),
		section("Cash flows from investing activities", "", nil, summary("Net cash used in investing activities", "-300.00")),
		section("Cash flows from financing activities", "", nil, summary("Net cash provided by financing activities", "50.00")),
		section("Cash at end of period", "", nil, nil), // no summary value, skipped
	}}}

	sections := CashflowSections(rep)
	require.Len(t, sections, 3)
	assert.Equal(t, CashflowSection{Name: "Operating", Value: 1200}, sections[0])
	assert.Equal(t, CashflowSection{Name: "Investing", Value: -300}, sections[1])
	assert.Equal(t, CashflowSection{Name: "Financing", Value: 50}, sections[2])
}
