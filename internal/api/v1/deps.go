package v1

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks . ListStore,Syncer,Adder,Searcher,Notifier

import (
	"context"
	"errors"

	"github.com/vmunix/arrlist/internal/adder"
	"github.com/vmunix/arrlist/internal/catalog"
	"github.com/vmunix/arrlist/internal/lists"
	"github.com/vmunix/arrlist/internal/syncer"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// ListStore is the list persistence surface used by the API.
type ListStore interface {
	All() []lists.List
	Get(name string) (lists.List, error)
	Create(ctx context.Context, name string) (lists.List, error)
	Delete(ctx context.Context, name string) error
	AddItem(ctx context.Context, name, source, id string) (lists.Item, error)
	RemoveItem(ctx context.Context, name string, index int) (lists.Item, error)
}

// Syncer runs batch syncs of stored lists.
type Syncer interface {
	SyncList(ctx context.Context, name string, target catalog.Kind) (*syncer.Result, error)
	Targets() []catalog.Kind
}

// Adder adds a single item to one target.
type Adder interface {
	Add(ctx context.Context, item lists.Item, opts adder.Options) adder.Outcome
}

// Searcher looks up titles by free-text term.
type Searcher interface {
	LookupByTerm(ctx context.Context, term string) []catalog.Record
}

// Notifier sends test notifications.
type Notifier interface {
	TestNotification(ctx context.Context) error
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; per-target maps only hold configured targets.
type ServerDeps struct {
	// Required dependencies
	Lists  ListStore
	Syncer Syncer

	// Optional dependencies
	Adders    map[catalog.Kind]Adder
	Searchers map[catalog.Kind]Searcher
	Notifier  Notifier // nil when notifications are not configured
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Lists == nil {
		return errors.New("list store is required")
	}
	if d.Syncer == nil {
		return errors.New("syncer is required")
	}
	return nil
}
