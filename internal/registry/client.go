package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenk/backoff"

	"github.com/mnove/voidui/internal/changelog"
)

// Item is the registry's view of one component.
type Item struct {
	Name              string            `json:"name"`
	CurrentVersion    string            `json:"currentVersion"`
	AvailableVersions []string          `json:"availableVersions"`
	Changelog         []changelog.Entry `json:"changelog"`
	Source            string            `json:"source"`
}

// Client talks to a component registry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryDelay sets the delay before the single retry attempt.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// New creates a registry client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retryDelay: time.Second,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// FetchItem retrieves metadata, changelog and current source for a
// component. A 404 maps to ErrNotFound.
func (c *Client) FetchItem(ctx context.Context, name string) (*Item, error) {
	u := fmt.Sprintf("%s/components/%s.json", c.baseURL, url.PathEscape(name))

	body, err := c.get(ctx, u, &NotFoundError{Name: name})
	if err != nil {
		return nil, err
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("registry %s: decoding item %s: %w", c.baseURL, name, err)
	}
	if item.Name == "" {
		item.Name = name
	}
	if len(item.Changelog) > 0 {
		cl := &changelog.Changelog{
			Component:      item.Name,
			CurrentVersion: item.Changelog[0].Version,
			Entries:        item.Changelog,
		}
		if err := changelog.Validate(cl); err != nil {
			return nil, fmt.Errorf("registry %s: %w", c.baseURL, err)
		}
	}
	return &item, nil
}

// FetchSource retrieves the source of a component at a specific
// version, used as the merge base for drifted files. A 404 maps to
// ErrNotFound: historical versions may simply be unavailable.
func (c *Client) FetchSource(ctx context.Context, name, version string) (string, error) {
	u := fmt.Sprintf("%s/components/%s/%s/source", c.baseURL, url.PathEscape(name), url.PathEscape(version))

	body, err := c.get(ctx, u, &NotFoundError{Name: name, Version: version})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// get performs one GET with a single bounded retry on transient
// failures. 4xx responses never retry.
func (c *Client) get(ctx context.Context, u string, notFound *NotFoundError) ([]byte, error) {
	var body []byte

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("building request: %w", err))
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", u, err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			body, err = io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("reading response from %s: %w", u, err)
			}
			return nil
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(notFound)
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			return backoff.Permanent(&HTTPError{StatusCode: resp.StatusCode, URL: u})
		default:
			return &HTTPError{StatusCode: resp.StatusCode, URL: u}
		}
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), 1), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return nil, err
	}
	return body, nil
}
