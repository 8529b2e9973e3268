package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `vendor,date,amount,category,memo
AWS,2025-06-01,42.17,infrastructure,monthly bill
Delta,2025-06-03,-389.40,travel,refunded flight
Figma,2025-06-05,15.00,software,
`

func TestGenericParser_Parse(t *testing.T) {
	p := &GenericParser{}
	receipts, err := p.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, receipts, 3)

	assert.Equal(t, "AWS", receipts[0].Vendor)
	assert.Equal(t, "2025-06-01", receipts[0].Date)
	assert.Equal(t, "42.17", receipts[0].Amount.StringFixed(2))
	assert.Equal(t, "infrastructure", receipts[0].Category)

	// Negative exports normalize to positive expense values.
	assert.Equal(t, "389.40", receipts[1].Amount.StringFixed(2))
}

func TestGenericParser_HeaderOnly(t *testing.T) {
	p := &GenericParser{}
	receipts, err := p.Parse(strings.NewReader("vendor,date,amount,category,memo\n"))
	require.NoError(t, err)
	assert.Nil(t, receipts)
}

func TestGenericParser_BadRow(t *testing.T) {
	p := &GenericParser{}

	_, err := p.Parse(strings.NewReader("vendor,date,amount,category,memo\nAWS,June 1,10,x,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	_, err = p.Parse(strings.NewReader("vendor,date,amount,category,memo\nAWS,2025-06-01,lots,x,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("generic"))
	assert.NotNil(t, r.Get("GENERIC"))
	assert.Nil(t, r.Get("unknown"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&GenericParser{})
	assert.Panics(t, func() { r.Register(&GenericParser{}) })
}
