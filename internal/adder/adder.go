// Package adder drives a single list item through lookup, default resolution,
// submission and reconciliation against one target.
package adder

//go:generate mockgen -destination=mocks/mock_adder.go -package=mocks . Target,DefaultsResolver,Reconciler,Notifier

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmunix/arrlist/internal/catalog"
	"github.com/vmunix/arrlist/internal/defaults"
	"github.com/vmunix/arrlist/internal/lists"
	"github.com/vmunix/arrlist/internal/reconcile"
)

// Target is the lookup and submit surface of a service. *catalog.Catalog satisfies it.
type Target interface {
	Kind() catalog.Kind
	Supports(src catalog.Source) bool
	LookupByExternalID(ctx context.Context, src catalog.Source, id string) (*catalog.Record, error)
	Submit(ctx context.Context, req catalog.AddRequest) (*catalog.Record, error)
}

// DefaultsResolver yields the root folder and quality profile for an add.
type DefaultsResolver interface {
	Resolve(ctx context.Context, override defaults.Defaults) (defaults.Defaults, error)
}

// Reconciler decides whether a rejection means the title is already stored.
type Reconciler interface {
	Reconcile(ctx context.Context, rejection error, req catalog.AddRequest) reconcile.Result
}

// Notifier receives added/exists events for direct user actions.
type Notifier interface {
	NotifyAdded(ctx context.Context, rec catalog.Record, existed bool) error
}

// Options tune one Add call.
type Options struct {
	// Override replaces the resolved root folder and/or quality profile.
	Override defaults.Defaults
	// Notify sends a notification for added and exists outcomes.
	// Set for direct user actions, never for batch syncs.
	Notify bool
}

// Adder adds list items to one target.
type Adder struct {
	target     Target
	defaults   DefaultsResolver
	reconciler Reconciler
	notifier   Notifier
	log        *slog.Logger
}

// Option configures an Adder.
type Option func(*Adder)

// WithNotifier sets the notifier used when Options.Notify is set.
func WithNotifier(n Notifier) Option {
	return func(a *Adder) {
		a.notifier = n
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *Adder) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an Adder.
func New(target Target, resolver DefaultsResolver, reconciler Reconciler, opts ...Option) *Adder {
	a := &Adder{
		target:     target,
		defaults:   resolver,
		reconciler: reconciler,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With("component", "adder", "target", string(target.Kind()))
	return a
}

// Kind returns the target kind.
func (a *Adder) Kind() catalog.Kind {
	return a.target.Kind()
}

// Add runs one item to a terminal state. It never returns an error: every failure
// is reported through the Outcome.
func (a *Adder) Add(ctx context.Context, item lists.Item, opts Options) Outcome {
	log := a.log.With("item", item.String())

	if err := item.Validate(); err != nil {
		return failed(item, err)
	}
	if !a.target.Supports(item.Source) {
		log.Info("unsupported source for target")
		return Outcome{Item: item, Reason: ReasonUnsupported}
	}

	rec, err := a.target.LookupByExternalID(ctx, item.Source, item.ExternalID)
	switch {
	case errors.Is(err, catalog.ErrUnsupported):
		return Outcome{Item: item, Reason: ReasonUnsupported}
	case err != nil:
		log.Warn("lookup failed", "error", err)
		return failed(item, err)
	case rec == nil:
		log.Info("not found in catalog")
		return Outcome{Item: item, Reason: ReasonNotFound}
	}

	d, err := a.defaults.Resolve(ctx, opts.Override)
	if err != nil {
		log.Error("no add defaults", "error", err)
		return failed(item, err)
	}

	req := catalog.AddRequest{
		Record:           *rec,
		RootFolderPath:   d.RootFolderPath,
		QualityProfileID: d.QualityProfileID,
	}
	stored, err := a.target.Submit(ctx, req)
	if err == nil {
		log.Info("added", "title", stored.Title, "year", stored.Year, "root_folder", d.RootFolderPath)
		if opts.Notify {
			a.notify(ctx, *stored, false)
		}
		return Outcome{Item: item, OK: true, Record: stored}
	}

	res := a.reconciler.Reconcile(ctx, err, req)
	if !res.Exists {
		log.Warn("add rejected", "title", rec.Title, "error", err)
		return failed(item, err)
	}

	log.Info("already exists", "title", rec.Title, "stored_record", res.Record != nil)
	if opts.Notify {
		notified := *rec
		if res.Record != nil {
			notified = *res.Record
		}
		a.notify(ctx, notified, true)
	}
	return Outcome{Item: item, Reason: ReasonExists, Record: res.Record}
}

func (a *Adder) notify(ctx context.Context, rec catalog.Record, existed bool) {
	if a.notifier == nil {
		return
	}
	if err := a.notifier.NotifyAdded(ctx, rec, existed); err != nil {
		a.log.Warn("notification failed", "title", rec.Title, "error", err)
	}
}

func failed(item lists.Item, err error) Outcome {
	return Outcome{Item: item, Reason: ReasonError, Detail: err.Error()}
}
