// Package notify sends best-effort notifications about titles added on a user's request.
//
// The ntfy implementation posts to the configured topic URL. With no URL configured
// NewService returns a no-op, so callers never need to check whether notifications
// are enabled.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vmunix/arrlist/internal/catalog"
)

const userAgent = "arrlist/0.1"

// Config holds the ntfy settings.
type Config struct {
	URL     string // full topic URL, e.g. https://ntfy.sh/my-topic
	Token   string // optional bearer token
	Timeout time.Duration
}

// Service is the notification surface used by the add flow.
type Service interface {
	// NotifyAdded reports a title that was added, or found already present when existed is true.
	NotifyAdded(ctx context.Context, rec catalog.Record, existed bool) error
	TestNotification(ctx context.Context) error
}

// NewService returns an ntfy-backed Service, or a no-op when cfg has no URL.
func NewService(cfg Config) Service {
	endpoint := strings.TrimSpace(cfg.URL)
	if endpoint == "" {
		return noopService{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ntfyService{
		endpoint: endpoint,
		token:    strings.TrimSpace(cfg.Token),
		client:   &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether svc actually delivers notifications.
func Enabled(svc Service) bool {
	_, noop := svc.(noopService)
	return svc != nil && !noop
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	token    string
	client   *http.Client
}

func (n *ntfyService) NotifyAdded(ctx context.Context, rec catalog.Record, existed bool) error {
	kind := "Movie"
	if rec.Kind == catalog.KindSeries {
		kind = "Series"
	}
	data := payload{
		title:   "arrlist - " + kind + " Added",
		message: fmt.Sprintf("Added: %s", rec.String()),
		tags:    []string{"arrlist", string(rec.Kind), "added"},
	}
	if existed {
		data.title = "arrlist - Already Present"
		data.message = fmt.Sprintf("Already in library: %s", rec.String())
		data.tags[2] = "exists"
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	return n.send(ctx, payload{
		title:    "arrlist - Test",
		message:  "Notification system test",
		tags:     []string{"arrlist", "test"},
		priority: "low",
	})
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" {
		req.Header.Set("Priority", data.priority)
	}
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyAdded(context.Context, catalog.Record, bool) error { return nil }
func (noopService) TestNotification(context.Context) error                  { return nil }
