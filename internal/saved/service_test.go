package saved

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub-dev/finhub/internal/model"
)

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	svc := NewService(t.TempDir())

	first, err := svc.Add(model.SavedReport, "Q2 P&L", "profit-and-loss", "")
	require.NoError(t, err)
	second, err := svc.Add(model.SavedInvoice, "Acme invoice", "in_123", "follow up friday")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, model.SavedInvoice, items[1].Kind)
	assert.Equal(t, "follow up friday", items[1].Note)
}

func TestList_MissingFile(t *testing.T) {
	svc := NewService(t.TempDir())
	items, err := svc.List()
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	first, err := svc.Add(model.SavedReport, "keep", "r1", "")
	require.NoError(t, err)
	second, err := svc.Add(model.SavedLink, "drop", "https://example.com", "")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(second.ID))

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, items[0].ID)

	// File was rewritten with a header.
	data, err := os.ReadFile(filepath.Join(dir, "saved", "items.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), Header)
}

func TestRemove_NotFound(t *testing.T) {
	svc := NewService(t.TempDir())
	err := svc.Remove("2025-01-001")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCSVRoundTrip(t *testing.T) {
	svc := NewService(t.TempDir())

	item, err := svc.Add(model.SavedQuote, "Quote, with comma", "qt_9", "note \"quoted\"")
	require.NoError(t, err)

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.Title, items[0].Title)
	assert.Equal(t, item.Note, items[0].Note)
	assert.Equal(t, item.SavedAt.Format("2006-01-02T15:04:05"), items[0].SavedAt.Format("2006-01-02T15:04:05"))
}
