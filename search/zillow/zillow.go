package zillow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"home-finder/models"
	"home-finder/utils"
)

const (
	searchPath     = "/propertyExtendedSearch"
	defaultTimeout = 15 * time.Second
)

// Kind classifies a TransportError.
type Kind string

const (
	KindNetwork Kind = "network"
	KindTimeout Kind = "timeout"
	KindStatus  Kind = "status"
	KindDecode  Kind = "decode"
)

// TransportError is returned for every failed search call.
type TransportError struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("search %s error: HTTP %d: %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("search %s error: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrorKind returns the kind as a plain string.
func (e *TransportError) ErrorKind() string { return string(e.Kind) }

// Options configures a Client. Credentials are always passed in explicitly.
type Options struct {
	BaseURL string
	APIKey  string
	APIHost string
	Timeout time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client issues property searches against the RapidAPI Zillow endpoint.
type Client struct {
	opts   Options
	http   *http.Client
	logger *utils.Logger
}

// New creates a ready-to-use Client.
func New(opts Options, logger *utils.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		opts:   opts,
		http:   hc,
		logger: logger,
	}
}

// Search performs exactly one GET for q and returns the decoded JSON body.
// There is no retry; any failure comes back as a *TransportError.
func (c *Client) Search(ctx context.Context, q models.SearchQuery) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	url := strings.TrimRight(c.opts.BaseURL, "/") + searchPath + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Kind: KindNetwork, Err: err}
	}
	req.Header.Set("X-RapidAPI-Key", c.opts.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.opts.APIHost)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("[zillow] GET %s", url)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(ctx, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Err:        errors.New(snippet(body)),
		}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransportError{Kind: KindDecode, Err: err}
	}

	c.logger.Info("[zillow] Search for %q answered in %v", q.Location, time.Since(start).Round(time.Millisecond))
	return payload, nil
}

func classify(ctx context.Context, err error) *TransportError {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: KindTimeout, Err: err}
	}
	return &TransportError{Kind: KindNetwork, Err: err}
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "empty body"
	}
	if r := []rune(s); len(r) > 200 {
		return string(r[:200]) + "..."
	}
	return s
}
