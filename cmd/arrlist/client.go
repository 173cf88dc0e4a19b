package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client wraps HTTP calls to the arrlist server.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new arrlist API client.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(serverURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			// Syncing a long list makes one round trip per item.
			Timeout: 10 * time.Minute,
		},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

func (c *Client) do(method, path string, body, result any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var e struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			apiErr.Code, apiErr.Message = e.Code, e.Error
		}
		return apiErr
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status        string   `json:"status"`
	Version       string   `json:"version"`
	Targets       []string `json:"targets"`
	Lists         int      `json:"lists"`
	Notifications bool     `json:"notifications"`
}

type ListSummary struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
}

type ItemResponse struct {
	Index   int       `json:"index"`
	Source  string    `json:"source"`
	ID      string    `json:"id"`
	AddedAt time.Time `json:"added_at"`
}

type ListResponse struct {
	Name  string         `json:"name"`
	Items []ItemResponse `json:"items"`
}

type ExternalIDs struct {
	TMDB int64  `json:"tmdbId,omitempty"`
	TVDB int64  `json:"tvdbId,omitempty"`
	IMDB string `json:"imdbId,omitempty"`
}

type Record struct {
	Kind        string      `json:"kind"`
	ServiceID   int64       `json:"serviceId,omitempty"`
	Title       string      `json:"title"`
	Year        int         `json:"year,omitempty"`
	ExternalIDs ExternalIDs `json:"externalIds"`
	Overview    string      `json:"overview,omitempty"`
	ImageURLs   []string    `json:"imageUrls"`
}

type OutcomeItem struct {
	Source string `json:"source"`
	ID     string `json:"id"`
}

type Outcome struct {
	Item   OutcomeItem `json:"item"`
	OK     bool        `json:"ok"`
	Reason string      `json:"reason,omitempty"`
	Record *Record     `json:"record,omitempty"`
	Detail string      `json:"detail,omitempty"`
}

// State is "added" or the failure reason.
func (o Outcome) State() string {
	if o.OK {
		return "added"
	}
	return o.Reason
}

type Summary struct {
	Added       int `json:"added"`
	Exists      int `json:"exists"`
	NotFound    int `json:"not_found"`
	Unsupported int `json:"unsupported"`
	Failed      int `json:"error"`
}

type SyncResponse struct {
	RunID    string    `json:"run_id"`
	List     string    `json:"list"`
	Target   string    `json:"target"`
	Outcomes []Outcome `json:"outcomes"`
	Summary  Summary   `json:"summary"`
}

type SearchResult struct {
	Record
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
	InLibrary  bool    `json:"in_library"`
}

type SearchResponse struct {
	Target  string         `json:"target"`
	Term    string         `json:"term"`
	Results []SearchResult `json:"results"`
}

type AddRequest struct {
	Target           string `json:"target"`
	Source           string `json:"source"`
	ID               string `json:"id"`
	RootFolder       string `json:"root_folder,omitempty"`
	QualityProfileID int    `json:"quality_profile_id,omitempty"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(http.MethodGet, "/api/v1/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Lists() ([]ListSummary, error) {
	var resp struct {
		Lists []ListSummary `json:"lists"`
	}
	if err := c.do(http.MethodGet, "/api/v1/lists", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

func (c *Client) List(name string) (*ListResponse, error) {
	var resp ListResponse
	if err := c.do(http.MethodGet, "/api/v1/lists/"+url.PathEscape(name), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateList(name string) (*ListResponse, error) {
	var resp ListResponse
	if err := c.do(http.MethodPost, "/api/v1/lists", map[string]string{"name": name}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteList(name string) error {
	return c.do(http.MethodDelete, "/api/v1/lists/"+url.PathEscape(name), nil, nil)
}

func (c *Client) AddItem(list, source, id string) (*ItemResponse, error) {
	var resp ItemResponse
	body := map[string]string{"source": source, "id": id}
	if err := c.do(http.MethodPost, "/api/v1/lists/"+url.PathEscape(list)+"/items", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RemoveItem(list string, index int) (*ItemResponse, error) {
	var resp ItemResponse
	path := "/api/v1/lists/" + url.PathEscape(list) + "/items/" + strconv.Itoa(index)
	if err := c.do(http.MethodDelete, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Sync(list, target string) (*SyncResponse, error) {
	var resp SyncResponse
	path := "/api/v1/lists/" + url.PathEscape(list) + "/sync?" + url.Values{"target": {target}}.Encode()
	if err := c.do(http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(term, target string) (*SearchResponse, error) {
	var resp SearchResponse
	q := url.Values{"term": {term}, "target": {target}}
	if err := c.do(http.MethodGet, "/api/v1/search?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Add(req AddRequest) (*Outcome, error) {
	var resp Outcome
	if err := c.do(http.MethodPost, "/api/v1/add", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) NotifyTest() error {
	return c.do(http.MethodPost, "/api/v1/notify/test", nil, nil)
}
