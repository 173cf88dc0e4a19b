package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vmunix/arrlist/internal/adder"
	v1 "github.com/vmunix/arrlist/internal/api/v1"
	"github.com/vmunix/arrlist/internal/arr"
	"github.com/vmunix/arrlist/internal/catalog"
	"github.com/vmunix/arrlist/internal/config"
	"github.com/vmunix/arrlist/internal/defaults"
	"github.com/vmunix/arrlist/internal/images"
	"github.com/vmunix/arrlist/internal/lists"
	"github.com/vmunix/arrlist/internal/notify"
	"github.com/vmunix/arrlist/internal/reconcile"
	"github.com/vmunix/arrlist/internal/syncer"
)

// engine is the wired daemon: the API plus everything it needs.
type engine struct {
	api      *v1.Server
	syncer   *syncer.Driver
	store    *lists.Store
	notifier notify.Service // nil when not configured
	closers  []io.Closer
}

// targetConfig is the part of a [radarr] or [sonarr] section the engine needs.
type targetConfig struct {
	kind     catalog.Kind
	name     string
	url      string
	apiKey   string
	fallback defaults.Defaults
	opts     []catalog.Option
}

func targetsFromConfig(cfg *config.Config, logger *slog.Logger) []targetConfig {
	var out []targetConfig
	if r := cfg.Radarr; r != nil {
		if r.Enabled() {
			out = append(out, targetConfig{
				kind:     catalog.KindMovie,
				name:     "radarr",
				url:      r.URL,
				apiKey:   r.APIKey,
				fallback: defaults.Defaults{RootFolderPath: r.RootFolder, QualityProfileID: r.QualityProfileID},
			})
		} else {
			logger.Warn("radarr disabled: url or api_key missing")
		}
	}
	if s := cfg.Sonarr; s != nil {
		if s.Enabled() {
			out = append(out, targetConfig{
				kind:     catalog.KindSeries,
				name:     "sonarr",
				url:      s.URL,
				apiKey:   s.APIKey,
				fallback: defaults.Defaults{RootFolderPath: s.RootFolder, QualityProfileID: s.QualityProfileID},
				opts:     []catalog.Option{catalog.WithSeasonFolder(s.UseSeasonFolder())},
			})
		} else {
			logger.Warn("sonarr disabled: url or api_key missing")
		}
	}
	return out
}

func openBackend(ctx context.Context, cfg config.StoreConfig) (lists.Backend, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := lists.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	case config.BackendJSON, "":
		return lists.NewJSONFile(cfg.Path), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

func buildEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*engine, error) {
	backend, closer, err := openBackend(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	eng := &engine{}
	if closer != nil {
		eng.closers = append(eng.closers, closer)
	}

	eng.store, err = lists.Open(ctx, backend, logger)
	if err != nil {
		eng.close()
		return nil, fmt.Errorf("load lists: %w", err)
	}

	var ntfy notify.Config
	if n := cfg.Notifications.Ntfy; n != nil {
		ntfy = notify.Config{URL: n.URL, Token: n.Token, Timeout: n.Timeout}
	}
	svc := notify.NewService(ntfy)
	if notify.Enabled(svc) {
		eng.notifier = svc
	}

	imgs := images.New(cfg.Images.CDNBase, cfg.Images.DefaultProtocol)
	adders := map[catalog.Kind]syncer.ItemAdder{}
	apiAdders := map[catalog.Kind]v1.Adder{}
	searchers := map[catalog.Kind]v1.Searcher{}

	for _, t := range targetsFromConfig(cfg, logger) {
		client := arr.New(t.name, t.url, t.apiKey, arr.WithLogger(logger))
		opts := append([]catalog.Option{catalog.WithLogger(logger)}, t.opts...)

		var cat *catalog.Catalog
		if t.kind == catalog.KindMovie {
			cat = catalog.NewMovies(client, imgs, opts...)
		} else {
			cat = catalog.NewSeries(client, imgs, opts...)
		}

		a := adder.New(cat,
			defaults.NewResolver(client, t.fallback, logger),
			reconcile.New(cat, logger),
			adder.WithNotifier(svc),
			adder.WithLogger(logger),
		)
		adders[t.kind] = a
		apiAdders[t.kind] = a
		searchers[t.kind] = cat
	}

	eng.syncer = syncer.New(eng.store, adders, logger)

	deps := v1.ServerDeps{
		Lists:     eng.store,
		Syncer:    eng.syncer,
		Adders:    apiAdders,
		Searchers: searchers,
	}
	if eng.notifier != nil {
		deps.Notifier = eng.notifier
	}
	eng.api, err = v1.New(deps, v1.Config{APIKey: cfg.Server.APIKey, Version: version}, logger)
	if err != nil {
		eng.close()
		return nil, err
	}
	return eng, nil
}

func (e *engine) close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
}
