// Package coa is an in-memory view over the QuickBooks chart of accounts as
// the backend last returned it, for fast lookup while rendering reports and
// ledgers.
package coa

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finhub-dev/finhub/internal/api"
)

// Service provides lookup over a fetched chart of accounts.
type Service struct {
	accounts []api.QBAccount
	byID     map[string]api.QBAccount
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []api.QBAccount) *Service {
	byID := make(map[string]api.QBAccount, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load fetches the chart of accounts from the backend and returns a Service.
func Load(ctx context.Context, client *api.Client) (*Service, error) {
	accounts, err := client.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching chart of accounts: %w", err)
	}
	return NewService(accounts), nil
}

// All returns all accounts.
func (s *Service) All() []api.QBAccount {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id string) (api.QBAccount, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all accounts whose type matches, case-insensitively.
func (s *Service) ByType(accountType string) []api.QBAccount {
	var result []api.QBAccount
	for _, a := range s.accounts {
		if strings.EqualFold(a.Type, accountType) {
			result = append(result, a)
		}
	}
	return result
}

// TotalBalance sums the balances of all accounts of a type.
func (s *Service) TotalBalance(accountType string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.ByType(accountType) {
		total = total.Add(a.Balance)
	}
	return total
}
