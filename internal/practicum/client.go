package practicum

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	homeworkbot "github.com/DenisBelikov/homework-bot"
)

// DefaultEndpoint is the production homework-statuses endpoint.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const maxResponseBodySize = 1 << 20 // 1MB

// connection pooling limits; the client talks to a single host
const (
	defaultMaxIdleConns    = 10
	defaultIdleConnTimeout = 60 * time.Second
)

// defaultRequestTimeout bounds a single fetch when no timeout is configured.
// A hung call would otherwise stall the entire poll loop.
const defaultRequestTimeout = 10 * time.Second

// Client is an HTTP client for the homework-statuses API.
//
// Client applies a per-request timeout via context and limits response
// bodies to 1MB. It issues exactly one request per [Client.FetchStatuses]
// call; retrying is the poll loop's job through its normal cadence.
type Client struct {
	endpoint   string
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a new API [Client].
//
// The token is sent as an "Authorization: OAuth <token>" header with every
// request. An empty endpoint falls back to [DefaultEndpoint]; a
// non-positive timeout falls back to 10 seconds.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		timeout:  timeout,
		httpClient: &http.Client{
			// no default timeout - the per-request timeout is applied via context
			Transport: &http.Transport{
				MaxIdleConns:    defaultMaxIdleConns,
				IdleConnTimeout: defaultIdleConnTimeout,
			},
		},
	}
}

// FetchStatuses requests homework statuses updated since the given cursor.
//
// It issues a single GET with a from_date query parameter and the OAuth
// authorization header. Failures are translated into typed errors:
//
//   - network-layer failures → [*RequestError] wrapping the cause
//   - non-success HTTP status → [*RequestError] naming endpoint and code
//   - undecodable body → [*ParseError] wrapping the cause
//
// On success the decoded reply is returned as-is; validating its shape is
// the caller's job via homeworkbot.CheckResponse.
func (c *Client) FetchStatuses(ctx context.Context, from int64) (homeworkbot.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return homeworkbot.Response{}, &RequestError{Endpoint: c.endpoint, Err: err}
	}

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return homeworkbot.Response{}, &RequestError{Endpoint: c.endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	// read body with size limit
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return homeworkbot.Response{}, &RequestError{Endpoint: c.endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return homeworkbot.Response{}, &RequestError{Endpoint: c.endpoint, StatusCode: resp.StatusCode}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return homeworkbot.Response{}, &ParseError{Err: err}
	}

	return homeworkbot.NewResponse(decoded), nil
}

// Close closes all idle connections in the client's connection pool.
//
// Safe to call multiple times. After Close, the client remains usable but
// new connections will be established as needed.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
