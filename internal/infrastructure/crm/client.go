// Package crm is the REST client for the CRM backend. The backend owns all
// business rules and persistence; this package only moves JSON and maps the
// backend's error responses onto the console's error types.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"reachdesk/internal/shared/constants"
	"reachdesk/internal/shared/errors"
)

// Session carries the per-user credentials the browser presented to the
// console. Both values originate as backend cookies and are passed through
// verbatim: sessionid authenticates, csrftoken is echoed in the X-CSRFToken
// header on mutating requests (double-submit pattern).
type Session struct {
	SessionID string
	CSRFToken string
}

// Client is the CRM backend API client.
type Client struct {
	baseURL    string
	session    Session
	httpClient *http.Client

	// legacyNumeric selects the backend revision with integer ticket
	// statuses (0-4) and 0/1 response codes.
	legacyNumeric bool
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithLegacyNumericEncoding switches the client to the numeric-status
// backend revision.
func WithLegacyNumericEncoding() Option {
	return func(client *Client) {
		client.legacyNumeric = true
	}
}

// NewClient creates a new CRM backend client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSession returns a shallow copy of the client bound to one user's
// credentials. The copy shares the underlying HTTP client.
func (c *Client) WithSession(s Session) *Client {
	bound := *c
	bound.session = s
	return &bound
}

type sessionCtxKey struct{}

// ContextWithSession stores per-request credentials in the context. A
// session found in the request context takes precedence over one bound
// with WithSession, so a single shared client can serve all users.
func ContextWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext extracts the credentials stored by ContextWithSession.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(Session)
	return s, ok
}

// doRequest performs an HTTP request and decodes the JSON response into
// result. Non-2xx responses become upstream errors carrying the backend's
// body verbatim; nothing is retried.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	session := c.session
	if s, ok := SessionFromContext(ctx); ok {
		session = s
	}

	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	if session.SessionID != "" {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookie, Value: session.SessionID})
	}
	if session.CSRFToken != "" {
		req.AddCookie(&http.Cookie{Name: constants.CSRFTokenCookie, Value: session.CSRFToken})
		if !isSafeMethod(method) {
			req.Header.Set(constants.CSRFTokenHeader, session.CSRFToken)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewUpstreamError(http.StatusBadGateway, "backend unreachable", err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewUpstreamError(http.StatusBadGateway, "read backend response", err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return upstreamError(resp.StatusCode, respBody)
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return errors.NewUpstreamError(http.StatusBadGateway, "malformed backend response", err.Error())
	}

	return nil
}

// upstreamError maps a backend failure status onto the console error
// taxonomy, preserving the backend's payload for verbatim display.
func upstreamError(statusCode int, body []byte) error {
	detail := string(body)
	switch statusCode {
	case http.StatusNotFound:
		return errors.NewNotFoundError("resource not found", detail)
	case http.StatusUnauthorized:
		return errors.NewUnauthorizedError("backend session expired or missing", detail)
	case http.StatusForbidden:
		return errors.NewForbiddenError("backend rejected the request", detail)
	default:
		return errors.NewUpstreamError(statusCode, "backend request failed", detail)
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// paginatedEnvelope is the {results, count} shape some list endpoints use.
type paginatedEnvelope[T any] struct {
	Results []T   `json:"results"`
	Count   int64 `json:"count"`
}

// decodeList accepts either a bare JSON array or a paginated envelope,
// since the backend serves both shapes depending on the endpoint revision.
func decodeList[T any](data json.RawMessage) ([]T, int64, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, 0, errors.NewUpstreamError(http.StatusBadGateway, "malformed backend list", err.Error())
		}
		return items, int64(len(items)), nil
	}

	var env paginatedEnvelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, 0, errors.NewUpstreamError(http.StatusBadGateway, "malformed backend list", err.Error())
	}
	if env.Results == nil {
		env.Results = []T{}
	}
	return env.Results, env.Count, nil
}
