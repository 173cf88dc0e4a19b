// Package catalog resolves list items against the Radarr and Sonarr catalogs and
// normalizes their responses into a single Record type.
package catalog

import (
	"fmt"
	"strings"
)

// Kind selects a target service.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// ParseKind validates a target kind. "movies", "tv" and "show" are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "radarr":
		return KindMovie, nil
	case "series", "tv", "show", "sonarr":
		return KindSeries, nil
	}
	return "", fmt.Errorf("unknown target %q: must be movie or series", s)
}

// Source names the public catalog an external ID comes from.
type Source string

const (
	SourceIMDB Source = "imdb"
	SourceTMDB Source = "tmdb"
)

// ParseSource validates a source tag.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceIMDB:
		return SourceIMDB, nil
	case SourceTMDB:
		return SourceTMDB, nil
	}
	return "", fmt.Errorf("unknown source %q: must be imdb or tmdb", s)
}

// ExternalIDs holds the public identifiers of a title. Zero values mean unknown.
type ExternalIDs struct {
	TMDB int64  `json:"tmdbId,omitempty"`
	TVDB int64  `json:"tvdbId,omitempty"`
	IMDB string `json:"imdbId,omitempty"`
}

// IsZero reports whether no identifier is known.
func (ids ExternalIDs) IsZero() bool {
	return ids.TMDB == 0 && ids.TVDB == 0 && ids.IMDB == ""
}

// Record is a normalized catalog entry.
type Record struct {
	Kind        Kind        `json:"kind"`
	ServiceID   int64       `json:"serviceId,omitempty"` // id inside Radarr/Sonarr, 0 when not stored
	Title       string      `json:"title"`
	Year        int         `json:"year,omitempty"`
	ExternalIDs ExternalIDs `json:"externalIds"`
	Overview    string      `json:"overview,omitempty"`
	ImageURLs   []string    `json:"imageUrls"`
}

// Matches reports whether r shares any known identifier with ids.
func (r Record) Matches(ids ExternalIDs) bool {
	switch {
	case ids.TMDB != 0 && r.ExternalIDs.TMDB == ids.TMDB:
		return true
	case ids.TVDB != 0 && r.ExternalIDs.TVDB == ids.TVDB:
		return true
	case ids.IMDB != "" && strings.EqualFold(r.ExternalIDs.IMDB, ids.IMDB):
		return true
	}
	return false
}

func (r Record) String() string {
	if r.Year > 0 {
		return fmt.Sprintf("%s (%d)", r.Title, r.Year)
	}
	return r.Title
}
