package catalog

import (
	"context"
	"net/url"
	"strconv"
)

// AddRequest is a fully resolved add submission.
type AddRequest struct {
	Record           Record
	RootFolderPath   string
	QualityProfileID int
}

type movieAddOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}

type movieBody struct {
	TMDBID           int64           `json:"tmdbId"`
	IMDBID           string          `json:"imdbId,omitempty"`
	Title            string          `json:"title"`
	Year             int             `json:"year,omitempty"`
	RootFolderPath   string          `json:"rootFolderPath"`
	QualityProfileID int             `json:"qualityProfileId"`
	Monitored        bool            `json:"monitored"`
	AddOptions       movieAddOptions `json:"addOptions"`
}

type seriesAddOptions struct {
	SearchForMissingEpisodes bool `json:"searchForMissingEpisodes"`
}

type seriesBody struct {
	TVDBID           int64            `json:"tvdbId,omitempty"`
	IMDBID           string           `json:"imdbId,omitempty"`
	Title            string           `json:"title"`
	RootFolderPath   string           `json:"rootFolderPath"`
	QualityProfileID int              `json:"qualityProfileId"`
	SeasonFolder     bool             `json:"seasonFolder"`
	Monitored        bool             `json:"monitored"`
	AddOptions       seriesAddOptions `json:"addOptions"`
}

// Submit posts an add request and returns the record the service stored.
// Rejections are returned unchanged so callers can inspect them.
func (c *Catalog) Submit(ctx context.Context, req AddRequest) (*Record, error) {
	var (
		path string
		body any
	)
	ids := req.Record.ExternalIDs
	if c.kind == KindMovie {
		path = "/movie"
		body = movieBody{
			TMDBID:           ids.TMDB,
			IMDBID:           ids.IMDB,
			Title:            req.Record.Title,
			Year:             req.Record.Year,
			RootFolderPath:   req.RootFolderPath,
			QualityProfileID: req.QualityProfileID,
			Monitored:        true,
			AddOptions:       movieAddOptions{SearchForMovie: true},
		}
	} else {
		path = "/series"
		body = seriesBody{
			TVDBID:           ids.TVDB,
			IMDBID:           ids.IMDB,
			Title:            req.Record.Title,
			RootFolderPath:   req.RootFolderPath,
			QualityProfileID: req.QualityProfileID,
			SeasonFolder:     c.seasonFolder,
			Monitored:        true,
			AddOptions:       seriesAddOptions{SearchForMissingEpisodes: true},
		}
	}

	raw, err := c.client.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	if recs := c.records(raw); len(recs) > 0 {
		return &recs[0], nil
	}
	stored := req.Record
	return &stored, nil
}

// FindStored queries the target's own inventory filtered by the id the service
// indexes on (tmdbId for movies, tvdbId for series). Only exact matches are returned.
func (c *Catalog) FindStored(ctx context.Context, ids ExternalIDs) ([]Record, error) {
	var query url.Values
	switch {
	case c.kind == KindMovie && ids.TMDB != 0:
		query = url.Values{"tmdbId": {strconv.FormatInt(ids.TMDB, 10)}}
	case c.kind == KindSeries && ids.TVDB != 0:
		query = url.Values{"tvdbId": {strconv.FormatInt(ids.TVDB, 10)}}
	default:
		return nil, nil
	}

	raw, err := c.client.Get(ctx, "/"+string(c.kind), query)
	if err != nil {
		return nil, err
	}

	var matches []Record
	for _, rec := range c.records(raw) {
		if rec.Matches(ids) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// Inventory returns every title stored in the target.
func (c *Catalog) Inventory(ctx context.Context) ([]Record, error) {
	raw, err := c.client.Get(ctx, "/"+string(c.kind), nil)
	if err != nil {
		return nil, err
	}
	return c.records(raw), nil
}
