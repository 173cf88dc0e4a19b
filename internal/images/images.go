// Package images turns the image references found in catalog responses into absolute URLs.
package images

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	// DefaultCDNBase is prefixed to root-relative paths such as TMDB poster paths.
	DefaultCDNBase = "https://image.tmdb.org/t/p/original"

	// DefaultProtocol is used for protocol-relative URLs ("//host/x.jpg").
	DefaultProtocol = "https"
)

// urlFields lists the map keys that may carry an image reference, in priority order.
var urlFields = []string{
	"remoteUrl", "remote_url",
	"url",
	"coverUrl", "cover_url",
	"posterPath", "poster_path",
	"backdropPath", "backdrop_path",
	"path",
	"imagePath", "image_path",
}

// Normalizer converts heterogeneous image values into absolute URLs.
type Normalizer struct {
	cdnBase  string
	protocol string
}

// New creates a Normalizer. Empty arguments fall back to DefaultCDNBase and DefaultProtocol.
func New(cdnBase, protocol string) *Normalizer {
	cdnBase = strings.TrimRight(strings.TrimSpace(cdnBase), "/")
	if cdnBase == "" {
		cdnBase = DefaultCDNBase
	}
	protocol = strings.TrimSuffix(strings.TrimSpace(protocol), ":")
	if protocol == "" {
		protocol = DefaultProtocol
	}
	return &Normalizer{cdnBase: cdnBase, protocol: protocol}
}

// Normalize returns the absolute URLs referenced by v.
// Slices are walked one level deep; order is preserved, duplicates are kept
// and empty or unrecognized values are dropped.
func (n *Normalizer) Normalize(v any) []string {
	urls := []string{}
	switch vals := v.(type) {
	case []any:
		for _, el := range vals {
			urls = n.appendOne(urls, el)
		}
	case []string:
		for _, el := range vals {
			urls = n.appendOne(urls, el)
		}
	case []map[string]any:
		for _, el := range vals {
			urls = n.appendOne(urls, el)
		}
	default:
		urls = n.appendOne(urls, v)
	}
	return urls
}

func (n *Normalizer) appendOne(urls []string, v any) []string {
	if u := n.resolve(scalar(v)); u != "" {
		return append(urls, u)
	}
	return urls
}

// resolve makes s absolute.
func (n *Normalizer) resolve(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return s
	case strings.HasPrefix(s, "//"):
		return n.protocol + ":" + s
	case strings.HasPrefix(s, "/"):
		return n.cdnBase + s
	default:
		return s
	}
}

// scalar extracts a string candidate from a single (non-slice) value.
func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case map[string]any:
		for _, key := range urlFields {
			if s := strings.TrimSpace(scalarLeaf(val[key])); s != "" {
				return s
			}
		}
	case map[string]string:
		for _, key := range urlFields {
			if s := strings.TrimSpace(val[key]); s != "" {
				return s
			}
		}
	}
	return ""
}

// scalarLeaf is scalar without map recursion, so a field holding an object is ignored.
func scalarLeaf(v any) string {
	switch v.(type) {
	case map[string]any, map[string]string:
		return ""
	}
	return scalar(v)
}
