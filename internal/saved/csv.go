package saved

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/finhub-dev/finhub/internal/model"
)

// Header is the CSV header for items.csv.
const Header = "id,kind,title,ref,saved_at,note"

const (
	numFields  = 6
	colID      = 0
	colKind    = 1
	colTitle   = 2
	colRef     = 3
	colSavedAt = 4
	colNote    = 5
)

// ReadItems reads all saved items from an items.csv reader.
func ReadItems(r io.Reader) ([]model.SavedItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading saved items CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var items []model.SavedItem
	for i, rec := range records[1:] {
		item, err := UnmarshalItem(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteItems writes items to an items.csv writer (including header).
func WriteItems(w io.Writer, items []model.SavedItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, item := range items {
		if err := cw.Write(MarshalItem(item)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendItems appends items to an existing items.csv writer (no header).
func AppendItems(w io.Writer, items []model.SavedItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, item := range items {
		if err := cw.Write(MarshalItem(item)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalItem converts a SavedItem to a CSV row.
func MarshalItem(item model.SavedItem) []string {
	row := make([]string, numFields)
	row[colID] = item.ID
	row[colKind] = string(item.Kind)
	row[colTitle] = item.Title
	row[colRef] = item.Ref
	row[colSavedAt] = item.SavedAt.Format(time.RFC3339)
	row[colNote] = item.Note
	return row
}

// UnmarshalItem converts a CSV row to a SavedItem.
func UnmarshalItem(record []string) (model.SavedItem, error) {
	if len(record) != numFields {
		return model.SavedItem{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	savedAt, err := time.Parse(time.RFC3339, record[colSavedAt])
	if err != nil {
		return model.SavedItem{}, fmt.Errorf("parsing saved_at %q: %w", record[colSavedAt], err)
	}

	return model.SavedItem{
		ID:      record[colID],
		Kind:    model.SavedKind(record[colKind]),
		Title:   record[colTitle],
		Ref:     record[colRef],
		SavedAt: savedAt,
		Note:    record[colNote],
	}, nil
}
