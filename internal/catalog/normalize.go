package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field priority lists, one per concept. The first present, non-empty key wins.
var (
	titleFields    = []string{"title", "name", "originalTitle"}
	yearFields     = []string{"year"}
	dateFields     = []string{"releaseDate", "inCinemas", "firstAired", "release_date", "first_air_date"}
	tmdbFields     = []string{"tmdbId", "tmdb_id"}
	tvdbFields     = []string{"tvdbId", "tvdb_id"}
	imdbFields     = []string{"imdbId", "imdb_id"}
	overviewFields = []string{"overview", "plot"}
	posterFields   = []string{"remotePoster", "posterPath", "poster_path"}
)

// decodeDocuments accepts either a JSON array of objects or a single object.
// Anything else decodes to no documents.
func decodeDocuments(raw []byte) []map[string]any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	switch raw[0] {
	case '[':
		var items []any
		if err := dec.Decode(&items); err != nil {
			return nil
		}
		docs := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if doc, ok := item.(map[string]any); ok {
				docs = append(docs, doc)
			}
		}
		return docs
	case '{':
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			return nil
		}
		return []map[string]any{doc}
	}
	return nil
}

// toRecord converts one service document into a Record.
func (c *Catalog) toRecord(doc map[string]any) Record {
	rec := Record{
		Kind:      c.kind,
		ServiceID: intField(doc, "id"),
		Title:     stringField(doc, titleFields...),
		Overview:  stringField(doc, overviewFields...),
		ExternalIDs: ExternalIDs{
			TMDB: intField(doc, tmdbFields...),
			TVDB: intField(doc, tvdbFields...),
		},
	}

	if imdb, ok := NormalizeIMDB(stringField(doc, imdbFields...)); ok {
		rec.ExternalIDs.IMDB = imdb
	}

	rec.Year = int(intField(doc, yearFields...))
	if rec.Year == 0 {
		if date := stringField(doc, dateFields...); len(date) >= 4 {
			if y, err := strconv.Atoi(date[:4]); err == nil {
				rec.Year = y
			}
		}
	}

	rec.ImageURLs = c.images.Normalize(doc["images"])
	if len(rec.ImageURLs) == 0 {
		for _, key := range posterFields {
			if urls := c.images.Normalize(doc[key]); len(urls) > 0 {
				rec.ImageURLs = urls
				break
			}
		}
	}
	return rec
}

func stringField(doc map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := doc[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func intField(doc map[string]any, keys ...string) int64 {
	for _, key := range keys {
		switch v := doc[key].(type) {
		case json.Number:
			if n, err := v.Int64(); err == nil && n != 0 {
				return n
			}
		case float64:
			if v != 0 {
				return int64(v)
			}
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil && n != 0 {
				return n
			}
		}
	}
	return 0
}
