package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/vmunix/arrlist/internal/images"
)

// ErrUnsupported is returned when a source has no lookup mapping for the target kind.
var ErrUnsupported = errors.New("unsupported source for target")

// Requester performs raw API calls against a Radarr or Sonarr instance.
// *arr.Client satisfies it.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
}

// Catalog is the lookup and add surface of one target service.
type Catalog struct {
	kind         Kind
	client       Requester
	images       *images.Normalizer
	seasonFolder bool
	log          *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSeasonFolder controls the seasonFolder flag sent with series adds.
func WithSeasonFolder(enabled bool) Option {
	return func(c *Catalog) {
		c.seasonFolder = enabled
	}
}

// NewMovies creates the Radarr-backed movie catalog.
func NewMovies(client Requester, imgs *images.Normalizer, opts ...Option) *Catalog {
	return newCatalog(KindMovie, client, imgs, opts)
}

// NewSeries creates the Sonarr-backed series catalog.
func NewSeries(client Requester, imgs *images.Normalizer, opts ...Option) *Catalog {
	return newCatalog(KindSeries, client, imgs, append([]Option{WithSeasonFolder(true)}, opts...))
}

func newCatalog(kind Kind, client Requester, imgs *images.Normalizer, opts []Option) *Catalog {
	if imgs == nil {
		imgs = images.New("", "")
	}
	c := &Catalog{
		kind:   kind,
		client: client,
		images: imgs,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "catalog", "target", string(kind))
	return c
}

// Kind returns the target kind.
func (c *Catalog) Kind() Kind {
	return c.kind
}

// Supports reports whether items from src can be resolved against this target.
func (c *Catalog) Supports(src Source) bool {
	switch c.kind {
	case KindMovie:
		return src == SourceIMDB || src == SourceTMDB
	case KindSeries:
		return src == SourceIMDB
	}
	return false
}

// LookupByTerm runs a free-text catalog search.
// Failures are logged and yield an empty result.
func (c *Catalog) LookupByTerm(ctx context.Context, term string) []Record {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Record{}
	}
	raw, err := c.client.Get(ctx, "/"+string(c.kind)+"/lookup", url.Values{"term": {term}})
	if err != nil {
		c.log.Warn("lookup failed", "term", term, "error", err)
		return []Record{}
	}
	return c.records(raw)
}

// LookupByExternalID resolves a single title by external id.
// It returns (nil, nil) when nothing is found or the service cannot be reached,
// and ErrUnsupported when the source has no mapping for this target.
func (c *Catalog) LookupByExternalID(ctx context.Context, src Source, id string) (*Record, error) {
	if !c.Supports(src) {
		return nil, fmt.Errorf("%s lookup by %s id: %w", c.kind, src, ErrUnsupported)
	}

	var (
		path  string
		query url.Values
		want  ExternalIDs
	)
	switch src {
	case SourceIMDB:
		imdb, ok := NormalizeIMDB(id)
		if !ok {
			c.log.Warn("invalid imdb id", "id", id)
			return nil, nil
		}
		want.IMDB = imdb
		if c.kind == KindMovie {
			path, query = "/movie/lookup/imdb", url.Values{"imdbId": {imdb}}
		} else {
			path, query = "/series/lookup", url.Values{"term": {"imdb:" + imdb}}
		}
	case SourceTMDB:
		tmdb, ok := NormalizeTMDB(id)
		if !ok {
			c.log.Warn("invalid tmdb id", "id", id)
			return nil, nil
		}
		want.TMDB = tmdb
		path, query = "/movie/lookup/tmdb", url.Values{"tmdbId": {strconv.FormatInt(tmdb, 10)}}
	}

	raw, err := c.client.Get(ctx, path, query)
	if err != nil {
		c.log.Warn("lookup failed", "source", src, "id", id, "error", err)
		return nil, nil
	}

	recs := c.records(raw)
	if len(recs) == 0 {
		return nil, nil
	}
	for i := range recs {
		if recs[i].Matches(want) {
			return &recs[i], nil
		}
	}
	return &recs[0], nil
}

// records decodes a response into Records, skipping entries without a title or id.
func (c *Catalog) records(raw []byte) []Record {
	docs := decodeDocuments(raw)
	recs := make([]Record, 0, len(docs))
	for _, doc := range docs {
		rec := c.toRecord(doc)
		if rec.Title == "" && rec.ExternalIDs.IsZero() {
			continue
		}
		recs = append(recs, rec)
	}
	return recs
}
