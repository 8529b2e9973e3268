package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AuthorityItem is one pending agent-initiated action awaiting human
// sign-off.
type AuthorityItem struct {
	ID          string          `json:"id"`
	Action      string          `json:"action"`
	Summary     string          `json:"summary"`
	Amount      decimal.Decimal `json:"amount"`
	RequestedBy string          `json:"requestedBy"`
	RequestedAt time.Time       `json:"requestedAt"`
	Status      string          `json:"status"` // pending, approved, rejected
}

type resolveAuthorityRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note,omitempty"`
}

// AuthorityQueue lists items pending sign-off.
func (c *Client) AuthorityQueue(ctx context.Context) ([]AuthorityItem, error) {
	var items []AuthorityItem
	err := c.get(ctx, "/api/authority-queue", nil, &items)
	return items, err
}

// ResolveAuthorityItem approves or rejects a queued item and returns its
// updated state.
func (c *Client) ResolveAuthorityItem(ctx context.Context, id string, approve bool, note string) (AuthorityItem, error) {
	var item AuthorityItem
	err := c.post(ctx, "/api/authority-queue/"+id+"/resolve", resolveAuthorityRequest{Approve: approve, Note: note}, &item)
	return item, err
}
