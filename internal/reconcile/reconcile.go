// Package reconcile turns an "already exists" rejection into the record the target has stored.
package reconcile

//go:generate mockgen -destination=mocks/mock_reconcile.go -package=mocks . Inventory

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/vmunix/arrlist/internal/arr"
	"github.com/vmunix/arrlist/internal/catalog"
)

var existsCodes = []string{"MovieExistsValidator", "SeriesExistsValidator"}

var existsPattern = regexp.MustCompile(`(?i)already\s+been\s+added`)

// IsAlreadyExists reports whether err is a rejection saying the title is already present.
func IsAlreadyExists(err error) bool {
	var rej *arr.RejectionError
	if !errors.As(err, &rej) {
		return false
	}
	for _, code := range rej.Codes() {
		if slices.Contains(existsCodes, code) {
			return true
		}
	}
	for _, msg := range rej.Messages() {
		if existsPattern.MatchString(msg) {
			return true
		}
	}
	return false
}

// Inventory is the read side of a target. *catalog.Catalog satisfies it.
type Inventory interface {
	Kind() catalog.Kind
	FindStored(ctx context.Context, ids catalog.ExternalIDs) ([]catalog.Record, error)
	LookupByTerm(ctx context.Context, term string) []catalog.Record
	Inventory(ctx context.Context) ([]catalog.Record, error)
}

// Result is the outcome of reconciling a rejection.
type Result struct {
	// Exists is true when the rejection means the title is already in the target.
	Exists bool
	// Record is the stored record, nil if no strategy found it.
	Record *catalog.Record
}

// Reconciler resolves rejections for one target.
type Reconciler struct {
	target Inventory
	log    *slog.Logger
}

// New creates a Reconciler.
func New(target Inventory, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{
		target: target,
		log:    log.With("component", "reconcile", "target", string(target.Kind())),
	}
}

// Reconcile inspects a rejected add. If the rejection does not mean "already exists",
// it returns a zero Result without querying anything. Otherwise it tries, in order,
// the filtered inventory query, an id-prefixed term lookup and a full inventory scan,
// and returns the first stored record found.
func (r *Reconciler) Reconcile(ctx context.Context, rejection error, req catalog.AddRequest) Result {
	if !IsAlreadyExists(rejection) {
		return Result{}
	}

	ids := req.Record.ExternalIDs
	strategies := []struct {
		name string
		fn   func(context.Context, catalog.AddRequest) *catalog.Record
	}{
		{"filtered", r.byFilter},
		{"term", r.byTerm},
		{"inventory", r.byInventory},
	}
	for _, s := range strategies {
		if rec := s.fn(ctx, req); rec != nil {
			r.log.Debug("found stored record", "strategy", s.name, "title", rec.Title, "service_id", rec.ServiceID)
			return Result{Exists: true, Record: rec}
		}
	}

	r.log.Info("title exists but stored record not found", "title", req.Record.Title,
		"tmdb", ids.TMDB, "tvdb", ids.TVDB, "imdb", ids.IMDB)
	return Result{Exists: true}
}

func (r *Reconciler) byFilter(ctx context.Context, req catalog.AddRequest) *catalog.Record {
	recs, err := r.target.FindStored(ctx, req.Record.ExternalIDs)
	if err != nil {
		r.log.Warn("filtered inventory query failed", "error", err)
		return nil
	}
	if len(recs) == 0 {
		return nil
	}
	return &recs[0]
}

func (r *Reconciler) byTerm(ctx context.Context, req catalog.AddRequest) *catalog.Record {
	ids := req.Record.ExternalIDs
	for _, term := range lookupTerms(r.target.Kind(), ids) {
		for _, rec := range r.target.LookupByTerm(ctx, term) {
			if rec.Matches(ids) {
				return &rec
			}
		}
	}
	return nil
}

func (r *Reconciler) byInventory(ctx context.Context, req catalog.AddRequest) *catalog.Record {
	all, err := r.target.Inventory(ctx)
	if err != nil {
		r.log.Warn("inventory scan failed", "error", err)
		return nil
	}
	ids := req.Record.ExternalIDs
	for i := range all {
		if all[i].Matches(ids) {
			return &all[i]
		}
	}
	if r.target.Kind() != catalog.KindSeries || req.Record.Title == "" {
		return nil
	}
	for i := range all {
		if strings.EqualFold(strings.TrimSpace(all[i].Title), strings.TrimSpace(req.Record.Title)) {
			return &all[i]
		}
	}
	return nil
}

// lookupTerms returns the id-prefixed search terms for the known ids,
// the id the target indexes on first.
func lookupTerms(kind catalog.Kind, ids catalog.ExternalIDs) []string {
	var terms []string
	if kind == catalog.KindMovie && ids.TMDB != 0 {
		terms = append(terms, "tmdb:"+strconv.FormatInt(ids.TMDB, 10))
	}
	if kind == catalog.KindSeries && ids.TVDB != 0 {
		terms = append(terms, "tvdb:"+strconv.FormatInt(ids.TVDB, 10))
	}
	if ids.IMDB != "" {
		terms = append(terms, "imdb:"+ids.IMDB)
	}
	return terms
}
