package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(label, value string, children []Row, summary *Summary) Row {
	h := &Header{ColData: []Cell{{Value: label}}}
	if value != "" {
		h.ColData = append(h.ColData, Cell{Value: value})
	}
	r := Row{Header: h, Summary: summary}
	if len(children) > 0 {
		r.Rows = &RowGroup{Row: children}
	}
	return r
}

func data(name, value string) Row {
	return Row{ColData: []Cell{{Value: name}, {Value: value}}}
}

func summary(label, value string) *Summary {
	return &Summary{ColData: []Cell{{Value: label}, {Value: value}}}
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, Flatten(Report{}))
	assert.Empty(t, Flatten(Report{Rows: RowGroup{}}))
}

func TestFlatten_SingleHeader(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{section("Income", "", nil, nil)}}}

	rows := Flatten(rep)
	require.Len(t, rows, 1)
	assert.Equal(t, "Income", rows[0].Label)
	assert.Equal(t, "", rows[0].Amount)
	assert.Equal(t, 0, rows[0].Indent)
	assert.True(t, rows[0].Bold)
}

func TestFlatten_HeaderWithNestedData(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Income", "", []Row{data("Sales", "100.00")}, nil),
	}}}

	rows := Flatten(rep)
	require.Len(t, rows, 2)

	assert.Equal(t, "Income", rows[0].Label)
	assert.Equal(t, 0, rows[0].Indent)
	assert.True(t, rows[0].Bold)

	assert.Equal(t, "Sales", rows[1].Label)
	assert.Equal(t, "$100.00", rows[1].Amount)
	assert.Equal(t, 1, rows[1].Indent)
	assert.False(t, rows[1].Bold)
}

func TestFlatten_SummaryAfterNestedRows(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Income", "",
			[]Row{data("Sales", "100.00"), data("Services", "50.00")},
			summary("Total Income", "150.00")),
	}}}

	rows := Flatten(rep)
	require.Len(t, rows, 4)

	last := rows[3]
	assert.Equal(t, "Total Income", last.Label)
	assert.Equal(t, "$150.00", last.Amount)
	assert.Equal(t, 0, last.Indent, "summary sits at the header's indent")
	assert.True(t, last.Bold)
}

func TestFlatten_DeepNesting(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Expenses", "", []Row{
			section("Office", "", []Row{data("Rent", "2000")}, summary("Total Office", "2000")),
		}, summary("Total Expenses", "2000")),
	}}}

	rows := Flatten(rep)
	require.Len(t, rows, 5)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, indents(rows))
	assert.Equal(t, "Rent", rows[2].Label)
	assert.False(t, rows[2].Bold)
}

func TestFlatten_MalformedRowsSkipSafely(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		{}, // nothing at all
		{ColData: []Cell{{Value: "Orphan"}}},          // label, no value
		{Summary: &Summary{}},                         // empty summary
		{Header: &Header{}},                           // empty header
		{Rows: &RowGroup{Row: []Row{data("X", "?")}}}, // unparsable amount
	}}}

	rows := Flatten(rep)
	require.Len(t, rows, 4)
	assert.Equal(t, "Orphan", rows[0].Label)
	assert.Equal(t, "", rows[0].Amount)
	assert.Equal(t, "", rows[3].Amount, "unparsable value renders empty")
}

func TestFlatten_Idempotent(t *testing.T) {
	rep := Report{Rows: RowGroup{Row: []Row{
		section("Income", "", []Row{data("Sales", "1234.56")}, summary("Total Income", "1234.56")),
	}}}

	first := Flatten(rep)
	second := Flatten(rep)
	assert.Equal(t, first, second)
}

func TestReport_DecodesPartialJSON(t *testing.T) {
	for _, payload := range []string{
		`{}`,
		`{"Rows":{}}`,
		`{"Rows":{"Row":[{"Header":{"ColData":[{"value":"Income"}]}}]}}`,
		`{"Rows":{"Row":[{"ColData":[{"value":"Sales"},{"value":"10"}]}]}}`,
	} {
		var rep Report
		require.NoError(t, json.Unmarshal([]byte(payload), &rep))
		assert.NotPanics(t, func() { Flatten(rep) })
	}
}

func indents(rows []DisplayRow) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Indent
	}
	return out
}
