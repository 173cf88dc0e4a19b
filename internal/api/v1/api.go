// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/arrlist/internal/adder"
	"github.com/vmunix/arrlist/internal/catalog"
	"github.com/vmunix/arrlist/internal/defaults"
	"github.com/vmunix/arrlist/internal/lists"
	"github.com/vmunix/arrlist/internal/syncer"
	"github.com/vmunix/arrlist/pkg/titles"
)

// maxBodyBytes bounds request bodies; every body here is a handful of fields.
const maxBodyBytes = 64 << 10

// Config holds API server configuration.
type Config struct {
	APIKey  string
	Version string
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
	now  func() time.Time
}

// New creates a new v1 API server.
func New(deps ServerDeps, cfg Config, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}
	if log == nil {
		log = slog.Default()
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Server{deps: deps, cfg: cfg, log: log.With("component", "api"), now: time.Now}, nil
}

// Handler returns the API routes behind the API key check.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.requireAPIKey(mux)
}

// RegisterRoutes registers API routes on the given mux without authentication.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
	mux.HandleFunc("POST /api/v1/notify/test", s.requireNotifier(s.testNotification))

	// Lists
	mux.HandleFunc("GET /api/v1/lists", s.listLists)
	mux.HandleFunc("POST /api/v1/lists", s.createList)
	mux.HandleFunc("GET /api/v1/lists/{name}", s.getList)
	mux.HandleFunc("DELETE /api/v1/lists/{name}", s.deleteList)
	mux.HandleFunc("POST /api/v1/lists/{name}/items", s.addItem)
	mux.HandleFunc("DELETE /api/v1/lists/{name}/items/{index}", s.removeItem)
	mux.HandleFunc("POST /api/v1/lists/{name}/sync", s.syncList)

	// Catalog
	mux.HandleFunc("GET /api/v1/search", s.search)
	mux.HandleFunc("POST /api/v1/add", s.add)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// writeListError maps list store errors onto HTTP statuses.
func (s *Server) writeListError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lists.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, lists.ErrExists):
		writeError(w, http.StatusConflict, "LIST_EXISTS", err.Error())
	case errors.Is(err, lists.ErrInvalidName):
		writeError(w, http.StatusBadRequest, "INVALID_NAME", err.Error())
	case errors.Is(err, lists.ErrInvalidItem):
		writeError(w, http.StatusBadRequest, "INVALID_ITEM", err.Error())
	case errors.Is(err, lists.ErrIndexOutOfRange):
		writeError(w, http.StatusNotFound, "INDEX_OUT_OF_RANGE", err.Error())
	default:
		s.log.Error("list store failed", "error", err)
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:        "ok",
		Version:       s.cfg.Version,
		Targets:       s.deps.Syncer.Targets(),
		Lists:         len(s.deps.Lists.All()),
		Notifications: s.deps.Notifier != nil,
	})
}

func (s *Server) testNotification(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Notifier.TestNotification(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, "NOTIFY_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func (s *Server) listLists(w http.ResponseWriter, r *http.Request) {
	all := s.deps.Lists.All()
	resp := listsResponse{Lists: make([]listSummary, len(all))}
	for i, l := range all {
		resp.Lists[i] = listSummary{Name: l.Name, Items: len(l.Items)}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if !decodeBody(w, r, &req) {
		return
	}
	l, err := s.deps.Lists.Create(r.Context(), req.Name)
	if err != nil {
		s.writeListError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, listToResponse(l))
}

func (s *Server) getList(w http.ResponseWriter, r *http.Request) {
	l, err := s.deps.Lists.Get(r.PathValue("name"))
	if err != nil {
		s.writeListError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listToResponse(l))
}

func (s *Server) deleteList(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Lists.Delete(r.Context(), r.PathValue("name")); err != nil {
		s.writeListError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	name := r.PathValue("name")
	item, err := s.deps.Lists.AddItem(r.Context(), name, req.Source, req.ID)
	if err != nil {
		s.writeListError(w, err)
		return
	}
	l, err := s.deps.Lists.Get(name)
	if err != nil {
		s.writeListError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, itemToResponse(len(l.Items)-1, item))
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INDEX", "index must be an integer")
		return
	}
	item, err := s.deps.Lists.RemoveItem(r.Context(), r.PathValue("name"), index)
	if err != nil {
		s.writeListError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, itemToResponse(index, item))
}

func (s *Server) syncList(w http.ResponseWriter, r *http.Request) {
	target, ok := targetParam(w, r)
	if !ok {
		return
	}
	res, err := s.deps.Syncer.SyncList(r.Context(), r.PathValue("name"), target)
	switch {
	case errors.Is(err, syncer.ErrTargetUnavailable):
		writeError(w, http.StatusServiceUnavailable, "TARGET_UNAVAILABLE", err.Error())
		return
	case err != nil:
		s.writeListError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	target, ok := targetParam(w, r)
	if !ok {
		return
	}
	term := strings.TrimSpace(r.URL.Query().Get("term"))
	if term == "" {
		writeError(w, http.StatusBadRequest, "MISSING_TERM", "term is required")
		return
	}
	searcher, ok := s.deps.Searchers[target]
	if !ok || searcher == nil {
		writeError(w, http.StatusServiceUnavailable, "TARGET_UNAVAILABLE", fmt.Sprintf("%s target not configured", target))
		return
	}

	records := searcher.LookupByTerm(r.Context(), term)
	title, year := titles.SplitYear(term)
	ranked := titles.Rank(title, year, records,
		func(rec catalog.Record) string { return rec.Title },
		func(rec catalog.Record) int { return rec.Year })

	resp := searchResponse{Target: target, Term: term, Results: make([]searchResult, len(ranked))}
	for i, sc := range ranked {
		resp.Results[i] = searchResult{
			Record:     sc.Item,
			Score:      sc.Score,
			Confidence: sc.Confidence.String(),
			InLibrary:  sc.Item.ServiceID != 0,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if !decodeBody(w, r, &req) {
		return
	}
	target, err := catalog.ParseKind(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TARGET", err.Error())
		return
	}
	a, ok := s.deps.Adders[target]
	if !ok || a == nil {
		writeError(w, http.StatusServiceUnavailable, "TARGET_UNAVAILABLE", fmt.Sprintf("%s target not configured", target))
		return
	}
	item, err := lists.NewItem(req.Source, req.ID, s.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ITEM", err.Error())
		return
	}

	out := a.Add(r.Context(), item, adder.Options{
		Override: defaults.Defaults{RootFolderPath: req.RootFolder, QualityProfileID: req.QualityProfileID},
		Notify:   true,
	})
	s.log.Info("direct add", "target", target, "item", item.String(), "state", out.State())

	code := http.StatusOK
	if out.OK {
		code = http.StatusCreated
	}
	writeJSON(w, code, out)
}
