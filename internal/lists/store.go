package lists

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
)

// Backend persists the whole set of lists as one document.
type Backend interface {
	Load(ctx context.Context) (map[string][]Item, error)
	Save(ctx context.Context, lists map[string][]Item) error
}

// Store is the in-memory view of all lists, written through to a Backend on every change.
// Reads return deep copies so callers never observe later mutations.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	lists   map[string][]Item
	now     func() time.Time
	log     *slog.Logger
}

// Open loads all lists from backend.
func Open(ctx context.Context, backend Backend, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	loaded, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lists: %w", err)
	}
	if loaded == nil {
		loaded = map[string][]Item{}
	}
	return &Store{
		backend: backend,
		lists:   loaded,
		now:     time.Now,
		log:     log.With("component", "lists"),
	}, nil
}

// Names returns all list names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.lists))
	for name := range s.lists {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns a snapshot of every list, sorted by name.
func (s *Store) All() []List {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]List, 0, len(s.lists))
	for name, items := range s.lists {
		all = append(all, List{Name: name, Items: slices.Clone(items)})
	}
	slices.SortFunc(all, func(a, b List) int { return strings.Compare(a.Name, b.Name) })
	return all
}

// Get returns a snapshot of the named list.
func (s *Store) Get(name string) (List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.lists[name]
	if !ok {
		return List{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	cloned := slices.Clone(items)
	if cloned == nil {
		cloned = []Item{}
	}
	return List{Name: name, Items: cloned}, nil
}

// Create adds an empty list.
func (s *Store) Create(ctx context.Context, name string) (List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return List{}, ErrInvalidName
	}
	err := s.update(ctx, func(m map[string][]Item) error {
		if _, ok := m[name]; ok {
			return fmt.Errorf("%q: %w", name, ErrExists)
		}
		m[name] = []Item{}
		return nil
	})
	if err != nil {
		return List{}, err
	}
	s.log.Info("list created", "list", name)
	return List{Name: name, Items: []Item{}}, nil
}

// Delete removes a list and its items.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.update(ctx, func(m map[string][]Item) error {
		if _, ok := m[name]; !ok {
			return fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		delete(m, name)
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("list deleted", "list", name)
	return nil
}

// AddItem validates and appends an item to the named list.
func (s *Store) AddItem(ctx context.Context, name, source, id string) (Item, error) {
	item, err := NewItem(source, id, s.now())
	if err != nil {
		return Item{}, err
	}
	err = s.update(ctx, func(m map[string][]Item) error {
		items, ok := m[name]
		if !ok {
			return fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		m[name] = append(items, item)
		return nil
	})
	if err != nil {
		return Item{}, err
	}
	s.log.Info("item added", "list", name, "item", item.String())
	return item, nil
}

// RemoveItem removes the item at the zero-based index and returns it.
func (s *Store) RemoveItem(ctx context.Context, name string, index int) (Item, error) {
	var removed Item
	err := s.update(ctx, func(m map[string][]Item) error {
		items, ok := m[name]
		if !ok {
			return fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		if index < 0 || index >= len(items) {
			return fmt.Errorf("index %d of %d: %w", index, len(items), ErrIndexOutOfRange)
		}
		removed = items[index]
		m[name] = slices.Delete(items, index, index+1)
		return nil
	})
	if err != nil {
		return Item{}, err
	}
	s.log.Info("item removed", "list", name, "index", index, "item", removed.String())
	return removed, nil
}

// update applies fn to a copy of the lists, saves the copy and only then swaps it in,
// so a failed save leaves the in-memory state unchanged.
func (s *Store) update(ctx context.Context, fn func(map[string][]Item) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string][]Item, len(s.lists))
	for name, items := range s.lists {
		next[name] = slices.Clone(items)
	}
	if err := fn(next); err != nil {
		return err
	}
	if err := s.backend.Save(ctx, next); err != nil {
		return fmt.Errorf("save lists: %w", err)
	}
	s.lists = next
	return nil
}
