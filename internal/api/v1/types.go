package v1

import (
	"time"

	"github.com/vmunix/arrlist/internal/catalog"
	"github.com/vmunix/arrlist/internal/lists"
)

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status        string         `json:"status"`
	Version       string         `json:"version"`
	Targets       []catalog.Kind `json:"targets"`
	Lists         int            `json:"lists"`
	Notifications bool           `json:"notifications"`
}

// listSummary is one entry of GET /lists.
type listSummary struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
}

type listsResponse struct {
	Lists []listSummary `json:"lists"`
}

// itemResponse is a list item with its position, which DELETE /items/{index} expects.
type itemResponse struct {
	Index   int            `json:"index"`
	Source  catalog.Source `json:"source"`
	ID      string         `json:"id"`
	AddedAt time.Time      `json:"added_at"`
}

type listResponse struct {
	Name  string         `json:"name"`
	Items []itemResponse `json:"items"`
}

func listToResponse(l lists.List) listResponse {
	resp := listResponse{Name: l.Name, Items: make([]itemResponse, len(l.Items))}
	for i, it := range l.Items {
		resp.Items[i] = itemToResponse(i, it)
	}
	return resp
}

func itemToResponse(index int, it lists.Item) itemResponse {
	return itemResponse{Index: index, Source: it.Source, ID: it.ExternalID, AddedAt: it.AddedAt}
}

type createListRequest struct {
	Name string `json:"name"`
}

type addItemRequest struct {
	Source string `json:"source"`
	ID     string `json:"id"`
}

// addRequest is the body of POST /add. Zero defaults defer to the service.
type addRequest struct {
	Target           string `json:"target"`
	Source           string `json:"source"`
	ID               string `json:"id"`
	RootFolder       string `json:"root_folder,omitempty"`
	QualityProfileID int    `json:"quality_profile_id,omitempty"`
}

// searchResult is one ranked candidate of GET /search.
type searchResult struct {
	catalog.Record
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
	InLibrary  bool    `json:"in_library"`
}

type searchResponse struct {
	Target  catalog.Kind   `json:"target"`
	Term    string         `json:"term"`
	Results []searchResult `json:"results"`
}
