package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FinanceSnapshot is the headline-numbers card: cash on hand plus
// period-to-date revenue, expenses and net income.
type FinanceSnapshot struct {
	Cash      decimal.Decimal `json:"cash"`
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetIncome decimal.Decimal `json:"netIncome"`
	AsOf      time.Time       `json:"asOf"`
}

// TimelineEvent is one entry in the founder timeline (payments, filings,
// calendar items — whatever the backend aggregates).
type TimelineEvent struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Title      string          `json:"title"`
	OccurredAt time.Time       `json:"occurredAt"`
	Amount     decimal.Decimal `json:"amount"`
}

// Lifecycle describes where the business sits in the backend's lifecycle
// model.
type Lifecycle struct {
	Stage       string   `json:"stage"`
	Description string   `json:"description"`
	Milestones  []string `json:"milestones"`
}

// Snapshot fetches the current finance snapshot.
func (c *Client) Snapshot(ctx context.Context) (FinanceSnapshot, error) {
	var snap FinanceSnapshot
	err := c.get(ctx, "/api/finance/snapshot", nil, &snap)
	return snap, err
}

// Timeline fetches the founder timeline, newest first.
func (c *Client) Timeline(ctx context.Context) ([]TimelineEvent, error) {
	var events []TimelineEvent
	err := c.get(ctx, "/api/finance/timeline", nil, &events)
	return events, err
}

// LifecycleStage fetches the business lifecycle assessment.
func (c *Client) LifecycleStage(ctx context.Context) (Lifecycle, error) {
	var lc Lifecycle
	err := c.get(ctx, "/api/finance/lifecycle", nil, &lc)
	return lc, err
}
