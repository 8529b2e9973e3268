package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	first := Entry{
		Timestamp: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		RunID:     "a1b2",
		Intent:    "invoice Acme $250",
		Status:    "completed",
		Decision:  "queued",
		Detail:    "Invoice drafted.",
	}
	require.NoError(t, Append(dir, []Entry{first}))

	second := Entry{
		Timestamp: time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
		RunID:     "c3d4",
		Intent:    "show cash position",
		Status:    "failed",
		Detail:    "orchestrator intent: timeout",
	}
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	e := Entry{Timestamp: time.Now().UTC().Truncate(time.Second), RunID: "x", Intent: "i", Status: "completed"}
	require.NoError(t, Append(dir, []Entry{e}))
	require.NoError(t, Append(dir, []Entry{e}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "run-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}
