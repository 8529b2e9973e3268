package model

import "time"

// SavedKind classifies what a saved item points at.
type SavedKind string

const (
	SavedReport  SavedKind = "report"
	SavedInvoice SavedKind = "invoice"
	SavedQuote   SavedKind = "quote"
	SavedNote    SavedKind = "note"
	SavedLink    SavedKind = "link"
)

// SavedItem is a row in the local saved-items store: a bookmark to something
// the user wants back later (a report view, an invoice, an article).
type SavedItem struct {
	ID      string // "YYYY-MM-NNN"
	Kind    SavedKind
	Title   string
	Ref     string // resource ID or URL the item points at
	SavedAt time.Time
	Note    string
}
