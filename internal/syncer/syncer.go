// Package syncer runs every item of a list through the add flow of one target.
package syncer

//go:generate mockgen -destination=mocks/mock_syncer.go -package=mocks . ListSource,ItemAdder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/arrlist/internal/adder"
	"github.com/vmunix/arrlist/internal/catalog"
	"github.com/vmunix/arrlist/internal/lists"
)

// ErrTargetUnavailable is returned when the requested target is not configured.
var ErrTargetUnavailable = errors.New("target not configured")

// ListSource returns list snapshots. *lists.Store satisfies it.
type ListSource interface {
	Get(name string) (lists.List, error)
}

// ItemAdder adds one item to a target. *adder.Adder satisfies it.
type ItemAdder interface {
	Add(ctx context.Context, item lists.Item, opts adder.Options) adder.Outcome
}

// Result is the outcome of one sync run.
type Result struct {
	RunID    string          `json:"run_id"`
	List     string          `json:"list"`
	Target   catalog.Kind    `json:"target"`
	Outcomes []adder.Outcome `json:"outcomes"`
	Summary  adder.Summary   `json:"summary"`
}

// Driver syncs lists into the configured targets.
type Driver struct {
	lists  ListSource
	adders map[catalog.Kind]ItemAdder
	log    *slog.Logger
}

// New creates a Driver. adders maps each configured target to its adder;
// missing targets make SyncList return ErrTargetUnavailable.
func New(src ListSource, adders map[catalog.Kind]ItemAdder, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	configured := make(map[catalog.Kind]ItemAdder, len(adders))
	for kind, a := range adders {
		if a != nil {
			configured[kind] = a
		}
	}
	return &Driver{
		lists:  src,
		adders: configured,
		log:    log.With("component", "syncer"),
	}
}

// Targets reports which targets are configured.
func (d *Driver) Targets() []catalog.Kind {
	var kinds []catalog.Kind
	for _, k := range []catalog.Kind{catalog.KindMovie, catalog.KindSeries} {
		if _, ok := d.adders[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// SyncList adds every item of the named list to target, one at a time in list order.
// It works on a snapshot taken at the start, so edits made while it runs are not seen.
// Per-item failures are reported in the outcomes; the returned error is only for an
// unknown list or an unconfigured target.
func (d *Driver) SyncList(ctx context.Context, name string, target catalog.Kind) (*Result, error) {
	add, ok := d.adders[target]
	if !ok {
		return nil, fmt.Errorf("%s: %w", target, ErrTargetUnavailable)
	}
	list, err := d.lists.Get(name)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:    uuid.NewString(),
		List:     list.Name,
		Target:   target,
		Outcomes: make([]adder.Outcome, 0, len(list.Items)),
	}
	log := d.log.With("run_id", res.RunID, "list", list.Name, "target", string(target))
	log.Info("sync started", "items", len(list.Items))
	start := time.Now()

	for i, item := range list.Items {
		out := add.Add(ctx, item, adder.Options{})
		log.Debug("item done", "index", i, "item", item.String(), "state", out.State())
		res.Outcomes = append(res.Outcomes, out)
	}

	res.Summary = adder.Summarize(res.Outcomes)
	log.Info("sync finished",
		"added", res.Summary.Added,
		"exists", res.Summary.Exists,
		"not_found", res.Summary.NotFound,
		"unsupported", res.Summary.Unsupported,
		"failed", res.Summary.Failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
