// Package arrtest provides an in-memory Radarr/Sonarr stand-in for tests.
package arrtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/vmunix/arrlist/internal/arr"
)

// Request captures details of a request to the fake server.
type Request struct {
	Method string
	Path   string
	Query  string
	APIKey string
}

// Server is a fake Radarr ("movie") or Sonarr ("series") instance.
//
// Lookup entries are what the catalog search returns; Stored entries are the
// service's inventory. A successful POST moves the submitted title into Stored.
type Server struct {
	t testing.TB

	kind     string // "movie" or "series"
	idKey    string // "tmdbId" or "tvdbId"
	existsCd string
	existsMs string

	APIKey string

	mu           sync.Mutex
	lookup       []map[string]any
	stored       []map[string]any
	rootFolders  []arr.RootFolder
	profiles     []arr.QualityProfile
	failPaths    map[string]int
	dropAdds     map[int64]bool
	ignoreFilter bool
	nextID       int64
	requests     []Request

	srv *httptest.Server
}

// NewRadarr creates a fake Radarr.
func NewRadarr(t testing.TB) *Server {
	t.Helper()
	return &Server{
		t:         t,
		kind:      "movie",
		idKey:     "tmdbId",
		existsCd:  "MovieExistsValidator",
		existsMs:  "This movie has already been added",
		APIKey:    "test-api-key",
		failPaths: map[string]int{},
		dropAdds:  map[int64]bool{},
		nextID:    1,
	}
}

// NewSonarr creates a fake Sonarr.
func NewSonarr(t testing.TB) *Server {
	t.Helper()
	return &Server{
		t:         t,
		kind:      "series",
		idKey:     "tvdbId",
		existsCd:  "SeriesExistsValidator",
		existsMs:  "This series has already been added",
		APIKey:    "test-api-key",
		failPaths: map[string]int{},
		dropAdds:  map[int64]bool{},
		nextID:    1,
	}
}

// WithLookup adds catalog entries returned by lookup endpoints.
func (s *Server) WithLookup(docs ...map[string]any) *Server {
	s.lookup = append(s.lookup, docs...)
	return s
}

// WithStored adds titles that already exist in the service.
func (s *Server) WithStored(docs ...map[string]any) *Server {
	for _, doc := range docs {
		if _, ok := doc["id"]; !ok {
			doc["id"] = s.nextID
			s.nextID++
		}
		s.stored = append(s.stored, doc)
	}
	return s
}

// WithRootFolders sets the root folder list.
func (s *Server) WithRootFolders(paths ...string) *Server {
	for i, p := range paths {
		s.rootFolders = append(s.rootFolders, arr.RootFolder{ID: int64(i + 1), Path: p, Accessible: true})
	}
	return s
}

// WithProfiles sets the quality profile list.
func (s *Server) WithProfiles(ids ...int) *Server {
	for _, id := range ids {
		s.profiles = append(s.profiles, arr.QualityProfile{ID: id, Name: fmt.Sprintf("profile-%d", id)})
	}
	return s
}

// FailPath makes every request to path (e.g. "/api/v3/rootfolder") answer with status.
func (s *Server) FailPath(path string, status int) *Server {
	s.failPaths[path] = status
	return s
}

// DropAdd makes a POST for the given tmdb/tvdb id close the connection without a response.
func (s *Server) DropAdd(id int64) *Server {
	s.dropAdds[id] = true
	return s
}

// IgnoreFilter makes the inventory endpoint ignore id filters, as older Sonarr builds do.
func (s *Server) IgnoreFilter() *Server {
	s.ignoreFilter = true
	return s
}

// Start launches the HTTP server. It is closed automatically when the test ends.
func (s *Server) Start() *Server {
	s.t.Helper()
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	s.t.Cleanup(s.srv.Close)
	return s
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	return s.srv.URL
}

// Client returns an arr.Client pointed at the server.
func (s *Server) Client() *arr.Client {
	name := "radarr"
	if s.kind == "series" {
		name = "sonarr"
	}
	return arr.New(name, s.URL(), s.APIKey)
}

// Requests returns all requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Calls counts requests with the given method and path.
func (s *Server) Calls(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Stored returns a copy of the inventory.
func (s *Server) Stored() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.stored...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	apiKey := r.Header.Get("X-Api-Key")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		APIKey: apiKey,
	})

	if s.APIKey != "" && apiKey != s.APIKey {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if status, ok := s.failPaths[r.URL.Path]; ok {
		writeJSON(w, status, map[string]string{"message": "injected failure"})
		return
	}

	base := "/api/v3/" + s.kind
	q := r.URL.Query()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/v3/rootfolder":
		writeJSON(w, http.StatusOK, nonNil(s.rootFolders))
	case r.Method == http.MethodGet && r.URL.Path == "/api/v3/qualityprofile":
		writeJSON(w, http.StatusOK, nonNil(s.profiles))
	case r.Method == http.MethodGet && r.URL.Path == "/api/v3/movie/lookup/imdb":
		s.writeSingle(w, s.findLookup("imdbId", q.Get("imdbId")))
	case r.Method == http.MethodGet && r.URL.Path == "/api/v3/movie/lookup/tmdb":
		s.writeSingle(w, s.findLookup("tmdbId", q.Get("tmdbId")))
	case r.Method == http.MethodGet && r.URL.Path == base+"/lookup":
		writeJSON(w, http.StatusOK, s.search(q.Get("term")))
	case r.Method == http.MethodGet && r.URL.Path == base:
		writeJSON(w, http.StatusOK, s.inventory(q.Get(s.idKey)))
	case r.Method == http.MethodPost && r.URL.Path == base:
		s.add(w, r)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "NotFound"})
	}
}

func (s *Server) writeSingle(w http.ResponseWriter, doc map[string]any) {
	if doc == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "NotFound"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) findLookup(key, value string) map[string]any {
	for _, doc := range s.lookup {
		if sameValue(doc[key], value) {
			return s.withStoredID(doc)
		}
	}
	return nil
}

// search emulates the lookup endpoint: "imdb:", "tmdb:" and "tvdb:" prefixes
// match ids exactly, anything else matches titles by substring.
func (s *Server) search(term string) []map[string]any {
	results := []map[string]any{}
	prefix, value, hasPrefix := strings.Cut(term, ":")
	for _, doc := range s.lookup {
		var match bool
		if hasPrefix {
			switch prefix {
			case "imdb":
				match = sameValue(doc["imdbId"], value)
			case "tmdb":
				match = sameValue(doc["tmdbId"], value)
			case "tvdb":
				match = sameValue(doc["tvdbId"], value)
			}
		} else {
			title, _ := doc["title"].(string)
			match = strings.Contains(strings.ToLower(title), strings.ToLower(term))
		}
		if match {
			results = append(results, s.withStoredID(doc))
		}
	}
	return results
}

// withStoredID mirrors the service marking lookup results that are already in the library.
func (s *Server) withStoredID(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	for _, st := range s.stored {
		if sameValue(st[s.idKey], fmt.Sprint(doc[s.idKey])) {
			out["id"] = st["id"]
		}
	}
	return out
}

func (s *Server) inventory(filter string) []map[string]any {
	results := []map[string]any{}
	for _, doc := range s.stored {
		if filter == "" || s.ignoreFilter || sameValue(doc[s.idKey], filter) {
			results = append(results, doc)
		}
	}
	return results
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	id := toInt64(body[s.idKey])
	if s.dropAdds[id] {
		hj, ok := w.(http.Hijacker)
		if !ok {
			s.t.Errorf("response writer does not support hijacking")
			return
		}
		conn, _, err := hj.Hijack()
		if err == nil {
			_ = conn.Close()
		}
		return
	}

	if _, ok := body["rootFolderPath"].(string); !ok || body["rootFolderPath"] == "" {
		writeJSON(w, http.StatusBadRequest, []map[string]any{{
			"propertyName": "RootFolderPath",
			"errorMessage": "'Root Folder Path' must not be empty.",
			"errorCode":    "NotEmptyValidator",
		}})
		return
	}

	for _, st := range s.stored {
		if id != 0 && toInt64(st[s.idKey]) == id {
			writeJSON(w, http.StatusBadRequest, []map[string]any{{
				"propertyName": strings.ToUpper(s.idKey[:1]) + s.idKey[1:],
				"errorMessage": s.existsMs,
				"errorCode":    s.existsCd,
			}})
			return
		}
	}

	stored := map[string]any{}
	for _, doc := range s.lookup {
		if id != 0 && toInt64(doc[s.idKey]) == id {
			for k, v := range doc {
				stored[k] = v
			}
		}
	}
	for k, v := range body {
		stored[k] = v
	}
	stored["id"] = s.nextID
	s.nextID++
	s.stored = append(s.stored, stored)

	writeJSON(w, http.StatusCreated, stored)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func sameValue(v any, want string) bool {
	if v == nil || want == "" {
		return false
	}
	return strings.EqualFold(fmt.Sprint(v), want)
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	}
	return 0
}
