package api

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finhub-dev/finhub/internal/report"
)

// QBStatus reports the backend's QuickBooks connection state.
type QBStatus struct {
	Connected   bool      `json:"connected"`
	CompanyName string    `json:"companyName"`
	LastSyncAt  time.Time `json:"lastSyncAt"`
}

// QBAccount is one row of the QuickBooks chart of accounts.
type QBAccount struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// JournalLine is one side of a journal entry.
type JournalLine struct {
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntry is a QuickBooks journal entry with its lines.
type JournalEntry struct {
	ID    string        `json:"id"`
	Date  string        `json:"date"` // YYYY-MM-DD as the backend sends it
	Memo  string        `json:"memo"`
	Lines []JournalLine `json:"lines"`
}

// LedgerRow is one general-ledger transaction line.
type LedgerRow struct {
	Date        string          `json:"date"`
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
}

// QuickBooksStatus fetches the connection status.
func (c *Client) QuickBooksStatus(ctx context.Context) (QBStatus, error) {
	var status QBStatus
	err := c.get(ctx, "/api/quickbooks/status", nil, &status)
	return status, err
}

// ProfitAndLoss fetches the P&L report tree for a date range. Empty range
// strings mean the backend default period.
func (c *Client) ProfitAndLoss(ctx context.Context, start, end string) (report.Report, error) {
	return c.reportEndpoint(ctx, "/api/quickbooks/profit-and-loss", rangeQuery(start, end))
}

// BalanceSheet fetches the balance sheet report tree as of a date.
func (c *Client) BalanceSheet(ctx context.Context, asOf string) (report.Report, error) {
	return c.reportEndpoint(ctx, "/api/quickbooks/balance-sheet", asOfQuery(asOf))
}

// CashFlow fetches the cash flow report tree for a date range.
func (c *Client) CashFlow(ctx context.Context, start, end string) (report.Report, error) {
	return c.reportEndpoint(ctx, "/api/quickbooks/cash-flow", rangeQuery(start, end))
}

// TrialBalance fetches the trial balance report tree as of a date.
func (c *Client) TrialBalance(ctx context.Context, asOf string) (report.Report, error) {
	return c.reportEndpoint(ctx, "/api/quickbooks/trial-balance", asOfQuery(asOf))
}

// Accounts fetches the chart of accounts.
func (c *Client) Accounts(ctx context.Context) ([]QBAccount, error) {
	var accounts []QBAccount
	err := c.get(ctx, "/api/quickbooks/accounts", nil, &accounts)
	return accounts, err
}

// JournalEntries fetches recent journal entries.
func (c *Client) JournalEntries(ctx context.Context) ([]JournalEntry, error) {
	var entries []JournalEntry
	err := c.get(ctx, "/api/quickbooks/journal-entries", nil, &entries)
	return entries, err
}

// GeneralLedger fetches ledger rows, optionally filtered to one account.
func (c *Client) GeneralLedger(ctx context.Context, account string) ([]LedgerRow, error) {
	var query url.Values
	if account != "" {
		query = url.Values{"account": {account}}
	}
	var rows []LedgerRow
	err := c.get(ctx, "/api/quickbooks/general-ledger", query, &rows)
	return rows, err
}

func (c *Client) reportEndpoint(ctx context.Context, path string, query url.Values) (report.Report, error) {
	var rep report.Report
	err := c.get(ctx, path, query, &rep)
	return rep, err
}

func rangeQuery(start, end string) url.Values {
	q := url.Values{}
	if start != "" {
		q.Set("start_date", start)
	}
	if end != "" {
		q.Set("end_date", end)
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

func asOfQuery(asOf string) url.Values {
	if asOf == "" {
		return nil
	}
	return url.Values{"as_of": {asOf}}
}
