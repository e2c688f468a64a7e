// Package apify is a minimal client for running Apify scraping actors and
// retrieving their dataset results.
//
// The flow mirrors the Apify REST API: start a run, poll its status until a
// terminal state, then download the default dataset. The cache layer sits
// in front of this client; nothing here knows about caching.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Terminal run statuses reported by the Apify API.
const (
	statusSucceeded = "SUCCEEDED"
	statusFailed    = "FAILED"
	statusAborted   = "ABORTED"
	statusTimedOut  = "TIMED-OUT"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultPollInterval   = 3 * time.Second
	defaultMaxWait        = 180 * time.Second
)

// Sentinel errors for caller-distinguishable API failures.
var (
	// ErrInvalidToken is returned on HTTP 401.
	ErrInvalidToken = errors.New("invalid Apify API token")

	// ErrQuotaExceeded is returned on HTTP 402; check
	// https://console.apify.com/billing.
	ErrQuotaExceeded = errors.New("Apify quota exceeded")

	// ErrRunTimeout is returned when a run does not reach a terminal state
	// within the wait budget.
	ErrRunTimeout = errors.New("timed out waiting for actor run")
)

// sharedTransport reuses connections across the start/poll/fetch sequence.
var sharedTransport = &http.Transport{
	Proxy:               http.ProxyFromEnvironment,
	MaxIdleConns:        10,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
	ForceAttemptHTTP2:   true,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
}

// Client calls the Apify actor API for one configured actor.
type Client struct {
	baseURL    string
	actorID    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger

	pollInterval time.Duration
	maxWait      time.Duration
}

// NewClient creates an Apify client. baseURL is the API root (e.g.
// https://api.apify.com/v2) and is overridable so tests can point the
// client at a local server.
func NewClient(baseURL, actorID, token string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		actorID: actorID,
		token:   token,
		httpClient: &http.Client{
			Timeout:   defaultRequestTimeout,
			Transport: sharedTransport.Clone(),
		},
		logger:       logger.With().Str("component", "apify").Logger(),
		pollInterval: defaultPollInterval,
		maxWait:      defaultMaxWait,
	}
}

// Run starts an actor run with input, waits for it to finish, and returns
// the dataset items it produced.
func (c *Client) Run(ctx context.Context, input RunInput) ([]Item, error) {
	runID, err := c.StartRun(ctx, input)
	if err != nil {
		return nil, err
	}

	run, err := c.WaitForRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	return c.FetchDataset(ctx, run.DefaultDatasetID)
}

// StartRun schedules an actor run and returns its run ID.
func (c *Client) StartRun(ctx context.Context, input RunInput) (string, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("marshaling actor input: %w", err)
	}

	url := fmt.Sprintf("%s/acts/%s/runs", c.baseURL, c.actorID)
	var envelope runEnvelope
	if err := c.do(ctx, http.MethodPost, url, body, &envelope); err != nil {
		return "", fmt.Errorf("starting actor run: %w", err)
	}

	c.logger.Debug().Str("run_id", envelope.Data.ID).Msg("actor run started")
	return envelope.Data.ID, nil
}

// WaitForRun polls the run until it reaches a terminal state. It returns
// an error for any terminal state other than SUCCEEDED, and ErrRunTimeout
// when the wait budget is exhausted.
func (c *Client) WaitForRun(ctx context.Context, runID string) (*RunData, error) {
	url := fmt.Sprintf("%s/actor-runs/%s", c.baseURL, runID)
	deadline := time.Now().Add(c.maxWait)

	for {
		var envelope runEnvelope
		if err := c.do(ctx, http.MethodGet, url, nil, &envelope); err != nil {
			return nil, fmt.Errorf("checking run status: %w", err)
		}

		switch envelope.Data.Status {
		case statusSucceeded:
			return &envelope.Data, nil
		case statusFailed, statusAborted, statusTimedOut:
			return nil, fmt.Errorf("actor run %s", strings.ToLower(envelope.Data.Status))
		}

		if time.Now().After(deadline) {
			return nil, ErrRunTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

// FetchDataset downloads all items from a dataset.
func (c *Client) FetchDataset(ctx context.Context, datasetID string) ([]Item, error) {
	url := fmt.Sprintf("%s/datasets/%s/items", c.baseURL, datasetID)

	var items []Item
	if err := c.do(ctx, http.MethodGet, url, nil, &items); err != nil {
		return nil, fmt.Errorf("fetching results: %w", err)
	}

	c.logger.Debug().Int("items", len(items)).Msg("dataset fetched")
	return items, nil
}

// do performs one authenticated API request and decodes the JSON response
// into out.
func (c *Client) do(ctx context.Context, method, url string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling Apify API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidToken
	case resp.StatusCode == http.StatusPaymentRequired:
		return ErrQuotaExceeded
	case resp.StatusCode >= 400:
		return fmt.Errorf("Apify API returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
