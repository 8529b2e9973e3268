// Package saved is the local store behind the Saved screen: bookmarks to
// reports, invoices, quotes and links, kept in a CSV file under the data
// directory.
package saved

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/finhub-dev/finhub/internal/id"
	"github.com/finhub-dev/finhub/internal/model"
)

// ErrNotFound reports a missing item ID.
var ErrNotFound = errors.New("saved item not found")

// Service provides saved-item operations over a data directory.
type Service struct {
	dataDir string
}

// NewService creates a Service rooted at dataDir.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// Add stores a new item and returns it with its assigned ID.
func (s *Service) Add(kind model.SavedKind, title, ref, note string) (model.SavedItem, error) {
	items, err := s.List()
	if err != nil {
		return model.SavedItem{}, err
	}

	now := time.Now()
	seq := nextSeq(items, now.Year(), int(now.Month()))
	item := model.SavedItem{
		ID:      id.FormatItemID(now.Year(), int(now.Month()), seq),
		Kind:    kind,
		Title:   title,
		Ref:     ref,
		SavedAt: now,
		Note:    note,
	}

	path := s.itemsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return model.SavedItem{}, fmt.Errorf("creating saved dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return model.SavedItem{}, fmt.Errorf("opening saved items: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return model.SavedItem{}, fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendItems(f, []model.SavedItem{item}); err != nil {
		return model.SavedItem{}, fmt.Errorf("appending item: %w", err)
	}
	return item, nil
}

// List returns all saved items in insertion order. A missing file means an
// empty list.
func (s *Service) List() ([]model.SavedItem, error) {
	f, err := os.Open(s.itemsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening saved items: %w", err)
	}
	defer f.Close()

	items, err := ReadItems(f)
	if err != nil {
		return nil, fmt.Errorf("reading saved items: %w", err)
	}
	return items, nil
}

// Remove deletes an item by ID, rewriting the file.
func (s *Service) Remove(itemID string) error {
	items, err := s.List()
	if err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, itemID)
	}

	f, err := os.Create(s.itemsPath())
	if err != nil {
		return fmt.Errorf("rewriting saved items: %w", err)
	}
	defer f.Close()

	if err := WriteItems(f, kept); err != nil {
		return fmt.Errorf("rewriting saved items: %w", err)
	}
	return nil
}

func (s *Service) itemsPath() string {
	return filepath.Join(s.dataDir, "saved", "items.csv")
}

// nextSeq returns the next sequence number for the given month.
func nextSeq(items []model.SavedItem, year, month int) int {
	maxSeq := 0
	for _, item := range items {
		y, m, seq, err := id.ParseItemID(item.ID)
		if err != nil || y != year || m != month {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
