// Package defaults picks the storage root and quality profile used for add requests.
package defaults

//go:generate mockgen -destination=mocks/mock_defaults.go -package=mocks . Source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrlist/internal/arr"
)

// ErrNoDefaults is returned when neither the service, an override nor the configured
// fallback yields a usable root folder and quality profile.
var ErrNoDefaults = errors.New("no usable add defaults")

// Defaults is the root folder and quality profile an add is submitted with.
type Defaults struct {
	RootFolderPath   string `json:"rootFolderPath"`
	QualityProfileID int    `json:"qualityProfileId"`
}

// Valid reports whether both fields are usable.
func (d Defaults) Valid() bool {
	return d.RootFolderPath != "" && d.QualityProfileID > 0
}

// Source lists a target's root folders and quality profiles. *arr.Client satisfies it.
type Source interface {
	RootFolders(ctx context.Context) ([]arr.RootFolder, error)
	QualityProfiles(ctx context.Context) ([]arr.QualityProfile, error)
}

// Resolver resolves Defaults for one target. Nothing is cached: every call queries the service.
type Resolver struct {
	source   Source
	fallback Defaults
	log      *slog.Logger
}

// NewResolver creates a Resolver. fallback holds the configured values used when the
// service returns nothing; either field may be zero.
func NewResolver(source Source, fallback Defaults, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		source:   source,
		fallback: fallback,
		log:      log.With("component", "defaults"),
	}
}

// Resolve returns the defaults for one add. Each field is taken from override if set,
// else from the first value the service returns, else from the configured fallback.
// Root folders and quality profiles are queried concurrently; a failing query is logged
// and degrades to the fallback.
func (r *Resolver) Resolve(ctx context.Context, override Defaults) (Defaults, error) {
	var (
		root    string
		profile int
	)

	g, gctx := errgroup.WithContext(ctx)
	if override.RootFolderPath == "" {
		g.Go(func() error {
			folders, err := r.source.RootFolders(gctx)
			if err != nil {
				r.log.Warn("root folder query failed, using fallback", "error", err)
				return nil
			}
			for _, f := range folders {
				if f.Path != "" {
					root = f.Path
					break
				}
			}
			return nil
		})
	}
	if override.QualityProfileID <= 0 {
		g.Go(func() error {
			profiles, err := r.source.QualityProfiles(gctx)
			if err != nil {
				r.log.Warn("quality profile query failed, using fallback", "error", err)
				return nil
			}
			for _, p := range profiles {
				if p.ID > 0 {
					profile = p.ID
					break
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	d := Defaults{
		RootFolderPath:   firstString(override.RootFolderPath, root, r.fallback.RootFolderPath),
		QualityProfileID: firstPositive(override.QualityProfileID, profile, r.fallback.QualityProfileID),
	}
	if !d.Valid() {
		return Defaults{}, fmt.Errorf("root folder %q, quality profile %d: %w",
			d.RootFolderPath, d.QualityProfileID, ErrNoDefaults)
	}

	r.log.Debug("resolved defaults", "root_folder", d.RootFolderPath, "quality_profile", d.QualityProfileID)
	return d, nil
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
