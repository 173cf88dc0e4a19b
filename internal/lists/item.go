// Package lists stores named watch-lists of external ids.
package lists

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/arrlist/internal/catalog"
)

var (
	// ErrNotFound indicates the named list does not exist.
	ErrNotFound = errors.New("list not found")

	// ErrExists indicates a list with that name already exists.
	ErrExists = errors.New("list already exists")

	// ErrInvalidItem indicates an item without a usable source or id.
	ErrInvalidItem = errors.New("invalid list item")

	// ErrInvalidName indicates an empty list name.
	ErrInvalidName = errors.New("invalid list name")

	// ErrIndexOutOfRange indicates an item index outside the list.
	ErrIndexOutOfRange = errors.New("item index out of range")
)

// Item is one entry of a list: an external id and where it comes from.
type Item struct {
	Source     catalog.Source `json:"source"`
	ExternalID string         `json:"id"`
	AddedAt    time.Time      `json:"addedAt"`
}

// NewItem validates source and id and returns an Item with the id in canonical form.
func NewItem(source, id string, addedAt time.Time) (Item, error) {
	src, err := catalog.ParseSource(source)
	if err != nil {
		return Item{}, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}
	norm, ok := catalog.NormalizeID(src, id)
	if !ok {
		return Item{}, fmt.Errorf("%w: malformed %s id %q", ErrInvalidItem, src, id)
	}
	return Item{Source: src, ExternalID: norm, AddedAt: addedAt.UTC()}, nil
}

// Validate checks the item carries a source and an id.
func (i Item) Validate() error {
	if i.Source == "" || strings.TrimSpace(i.ExternalID) == "" {
		return fmt.Errorf("%w: source and id are required", ErrInvalidItem)
	}
	return nil
}

func (i Item) String() string {
	return string(i.Source) + ":" + i.ExternalID
}

// List is a named, ordered sequence of items.
type List struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}
