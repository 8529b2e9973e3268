// Package notes reads and writes the founder-hub notes and receipts tables.
package notes

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finhub-dev/finhub/internal/supabase"
)

const (
	notesTable    = "founder_hub_notes"
	receiptsTable = "receipts"
)

// Note is one founder-hub note.
type Note struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Receipt is one stored receipt record.
type Receipt struct {
	ID       string          `json:"id,omitempty"`
	Vendor   string          `json:"vendor"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Category string          `json:"category,omitempty"`
	Memo     string          `json:"memo,omitempty"`
}

// Service provides note and receipt operations over Supabase.
type Service struct {
	db *supabase.Client
}

// NewService creates a Service.
func NewService(db *supabase.Client) *Service {
	return &Service{db: db}
}

// List returns all notes, pinned first, newest first within each group.
func (s *Service) List(ctx context.Context) ([]Note, error) {
	query := url.Values{
		"select": {"*"},
		"order":  {"pinned.desc,created_at.desc"},
	}
	var list []Note
	if err := s.db.Select(ctx, notesTable, query, &list); err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return list, nil
}

// Add creates a note and returns it with its server-assigned fields.
func (s *Service) Add(ctx context.Context, title, body string, pinned bool) (Note, error) {
	rows := []Note{{Title: title, Body: body, Pinned: pinned}}
	var created []Note
	if err := s.db.Insert(ctx, notesTable, rows, &created); err != nil {
		return Note{}, fmt.Errorf("adding note: %w", err)
	}
	if len(created) == 0 {
		return Note{}, fmt.Errorf("adding note: empty response")
	}
	return created[0], nil
}

// Delete removes a note by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	query := url.Values{"id": {"eq." + id}}
	if err := s.db.Delete(ctx, notesTable, query); err != nil {
		return fmt.Errorf("deleting note %s: %w", id, err)
	}
	return nil
}

// Receipts returns all receipts, newest first.
func (s *Service) Receipts(ctx context.Context) ([]Receipt, error) {
	query := url.Values{
		"select": {"*"},
		"order":  {"date.desc"},
	}
	var list []Receipt
	if err := s.db.Select(ctx, receiptsTable, query, &list); err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	return list, nil
}

// AddReceipts inserts a batch of receipts (the import path) and returns the
// created rows.
func (s *Service) AddReceipts(ctx context.Context, receipts []Receipt) ([]Receipt, error) {
	if len(receipts) == 0 {
		return nil, nil
	}
	var created []Receipt
	if err := s.db.Insert(ctx, receiptsTable, receipts, &created); err != nil {
		return nil, fmt.Errorf("adding receipts: %w", err)
	}
	return created, nil
}
