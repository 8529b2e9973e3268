package commands_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub-dev/finhub/internal/commands"
	"github.com/finhub-dev/finhub/internal/config"
)

// runFinhub executes the CLI in-process and returns its combined output.
func runFinhub(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// writeConfig writes a finhub.yaml pointing at serverURL and returns its
// path.
func writeConfig(t *testing.T, serverURL string) string {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default(serverURL)
	cfg.Data.Dir = filepath.Join(dir, "data")

	path := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, config.Save(path, cfg))
	return path
}

func TestInit_WritesConfigAndDataDirs(t *testing.T) {
	dir := t.TempDir()

	out, err := runFinhub(t, "init", dir, "--server", "http://backend:3001")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized finhub")

	data, err := os.ReadFile(filepath.Join(dir, config.DefaultFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url: http://backend:3001")

	for _, d := range []string{"saved", "logs"} {
		info, err := os.Stat(filepath.Join(dir, ".finhub", d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()

	_, err := runFinhub(t, "init", dir)
	require.NoError(t, err)

	_, err = runFinhub(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestBooksPnl_RendersReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/quickbooks/profit-and-loss", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Rows": {"Row": [
				{
					"Header": {"ColData": [{"value": "Income"}]},
					"Rows": {"Row": [
						{"ColData": [{"value": "Sales"}, {"value": "4200.00"}]}
					]},
					"Summary": {"ColData": [{"value": "Total Income"}, {"value": "4200.00"}]}
				}
			]}
		}`))
	}))
	defer server.Close()

	out, err := runFinhub(t, "books", "pnl", "--config", writeConfig(t, server.URL))
	require.NoError(t, err)
	assert.Contains(t, out, "Income")
	assert.Contains(t, out, "  Sales")
	assert.Contains(t, out, "Total Income")
	assert.Contains(t, out, "$4,200")
}

func TestInvoicesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/stripe/invoices", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "in_1", "number": "INV-0042", "customer": "Acme Corp", "status": "open", "amountDue": "250.00", "dueDate": "2025-09-01"}]`))
	}))
	defer server.Close()

	out, err := runFinhub(t, "invoices", "list", "--config", writeConfig(t, server.URL))
	require.NoError(t, err)
	assert.Contains(t, out, "INV-0042")
	assert.Contains(t, out, "$250.00")
}

func TestAuthorityApprove_PostsResolution(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "aq-7", "status": "approved"}`))
	}))
	defer server.Close()

	out, err := runFinhub(t, "authority", "approve", "aq-7", "--note", "ok", "--config", writeConfig(t, server.URL))
	require.NoError(t, err)
	assert.Equal(t, "/api/authority-queue/aq-7/resolve", gotPath)
	assert.Contains(t, out, "Item aq-7 is now approved")
}

func TestSaved_AddListRemove(t *testing.T) {
	cfgPath := writeConfig(t, "http://unused")

	out, err := runFinhub(t, "saved", "add", "Q3 board deck", "--kind", "link", "--ref", "https://example.com/deck", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved Q3 board deck")

	out, err = runFinhub(t, "saved", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Q3 board deck")

	fields := strings.Fields(out)
	require.NotEmpty(t, fields)
	itemID := fields[0]

	_, err = runFinhub(t, "saved", "rm", itemID, "--config", cfgPath)
	require.NoError(t, err)

	out, err = runFinhub(t, "saved", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing saved yet")
}

func TestMissingConfig_SuggestsInit(t *testing.T) {
	_, err := runFinhub(t, "pulse", "snapshot", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finhub init")
}
