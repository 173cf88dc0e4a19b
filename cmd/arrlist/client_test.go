package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Status(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/status").
		ExpectGET().
		ExpectAPIKey("secret").
		RespondJSON(StatusResponse{Status: "ok", Version: "1.0.0", Targets: []string{"movie"}, Lists: 2}).
		Build()

	s, err := NewClient(srv.URL, "secret").Status()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", s.Version)
	assert.Equal(t, []string{"movie"}, s.Targets)
	assert.Equal(t, 2, s.Lists)
}

func TestClient_NoAPIKeyHeaderWhenEmpty(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			_, set := r.Header["X-Api-Key"]
			assert.False(t, set)
			respondJSON(t, w, http.StatusOK, map[string]any{"lists": []any{}})
		}).
		Build()

	all, err := NewClient(srv.URL+"/", "").Lists()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestClient_APIError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusNotFound, "NOT_FOUND", "list \"x\" not found").
		Build()

	_, err := NewClient(srv.URL, "").List("x")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Contains(t, err.Error(), "server error 404 (NOT_FOUND)")
}

func TestClient_PlainTextError(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}).
		Build()

	err := NewClient(srv.URL, "").NotifyTest()
	require.Error(t, err)
	assert.Equal(t, "server error 502: bad gateway", err.Error())
}

func TestClient_ConnectionRefused(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", "").Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClient_Sync_EncodesQuery(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/lists/my list/sync").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "series", r.URL.Query().Get("target"))
			respondJSON(t, w, http.StatusOK, SyncResponse{
				RunID:  "r1",
				List:   "my list",
				Target: "series",
				Outcomes: []Outcome{
					{Item: OutcomeItem{Source: "tmdb", ID: "1399"}, OK: true},
				},
				Summary: Summary{Added: 1},
			})
		}).
		Build()

	res, err := NewClient(srv.URL, "").Sync("my list", "series")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Summary.Added)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, "added", res.Outcomes[0].State())
}

func TestClient_AddItem_SendsBody(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/lists/favs/items").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"source": "imdb", "id": "tt0133093"}, body)
			respondJSON(t, w, http.StatusCreated, ItemResponse{Index: 0, Source: "imdb", ID: "tt0133093"})
		}).
		Build()

	it, err := NewClient(srv.URL, "").AddItem("favs", "imdb", "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, "tt0133093", it.ID)
}

func TestClient_DeleteList_NoContent(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/lists/favs").
		ExpectDELETE().
		RespondStatus(http.StatusNoContent).
		Build()

	require.NoError(t, NewClient(srv.URL, "").DeleteList("favs"))
}

func TestClient_Add_NotOKIsNotAnError(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/add").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var req AddRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "movie", req.Target)
			assert.Equal(t, "/movies", req.RootFolder)
			respondJSON(t, w, http.StatusOK, Outcome{Item: OutcomeItem{Source: req.Source, ID: req.ID}, Reason: "exists"})
		}).
		Build()

	out, err := NewClient(srv.URL, "").Add(AddRequest{Target: "movie", Source: "imdb", ID: "tt1", RootFolder: "/movies"})
	require.NoError(t, err)
	assert.False(t, out.OK)
	assert.Equal(t, "exists", out.State())
}
