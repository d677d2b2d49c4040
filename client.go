package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"time"
)

// Config holds the credentials and API version for a [Client]. All fields
// except Version are required; Version defaults to "v1".
type Config struct {
	APIKey   string
	Username string
	Password string
	Version  string
}

// Client is a client for the SkuFlow order-management API. It is immutable
// after construction and safe for concurrent use: concurrent calls share
// only the configuration and transport, and each call waits out its own
// throttle delay independently.
type Client struct {
	baseURL   string
	config    Config
	options   *Options
	transport Transport
}

// New creates a Client for the API at baseURL. The configuration is
// validated synchronously: a missing credential fails with a [ConfigError]
// naming the field, before any network I/O.
func New(baseURL string, cfg Config, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL must be set")
	}

	switch {
	case cfg.APIKey == "":
		return nil, &ConfigError{Field: "APIKey"}
	case cfg.Username == "":
		return nil, &ConfigError{Field: "Username"}
	case cfg.Password == "":
		return nil, &ConfigError{Field: "Password"}
	}

	if cfg.Version == "" {
		cfg.Version = "v1"
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		config:  cfg,
		options: options,
	}

	c.transport = options.transport
	if c.transport == nil {
		c.transport = newRestyTransport(baseURL, cfg, options)
	}

	return c, nil
}

// Close releases idle connections held by the default transport. It is a
// no-op for transports supplied via [WithTransport].
func (c *Client) Close() {
	if c == nil {
		return
	}

	if rt, ok := c.transport.(*restyTransport); ok {
		rt.close()
	}
}

// Get issues a GET request to path with the given query parameters and
// decodes the response into out. A nil out discards the response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, &Request{Path: path, Method: http.MethodGet, Query: query}, out)
}

// Post issues a POST request. The body is required and must be non-empty.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, &Request{Path: path, Method: http.MethodPost, Body: body}, out)
}

// Put issues a PUT request. A nil body is sent as an empty JSON object.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, &Request{Path: path, Method: http.MethodPut, Body: body}, out)
}

// Patch issues a PATCH request. A nil body is sent as an empty JSON object.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, &Request{Path: path, Method: http.MethodPatch, Body: body}, out)
}

// Delete issues a DELETE request. DELETE requests carry no body.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, &Request{Path: path, Method: http.MethodDelete}, out)
}

// Do issues the request described by req and decodes the response into out.
// An HTTP 429 is retried exactly once after the configured delay, re-issuing
// the identical descriptor; any other failure, and any failure of the retry
// itself, is returned to the caller.
func (c *Client) Do(ctx context.Context, req *Request, out any) error {
	if c == nil {
		return errors.New("client is nil")
	}

	if err := validateRequest(req); err != nil {
		return err
	}

	if req.Body == nil && (req.Method == http.MethodPut || req.Method == http.MethodPatch) {
		req.Body = map[string]any{}
	}

	c.options.requestLogger.Debugf("%s %s", req.Method, req.Path)

	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.options.requestLogger.Warnf("%s %s: rate limited, retrying in %s",
			req.Method, req.Path, c.options.throttleRetryDelay)

		if err := c.waitRetryDelay(ctx); err != nil {
			return err
		}

		resp, err = c.send(ctx, req)
		if err != nil {
			return err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			throttled := &ThrottledError{Message: errorMessage(resp.Body)}
			c.options.requestLogger.Errorf("%s %s: %v", req.Method, req.Path, throttled)
			return throttled
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
		c.options.requestLogger.Errorf("%s %s: %v", req.Method, req.Path, statusErr)
		return statusErr
	}

	return c.decode(resp.Body, out)
}

func (c *Client) send(ctx context.Context, req *Request) (*RawResponse, error) {
	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		transportErr := &TransportError{Method: req.Method, Path: req.Path, Err: err}
		c.options.requestLogger.Errorf("%v", transportErr)
		return nil, transportErr
	}

	return resp, nil
}

func (c *Client) waitRetryDelay(ctx context.Context) error {
	timer := time.NewTimer(c.options.throttleRetryDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}

	if c.options.preserveBigInt {
		body = QuoteBigIntValues(body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Snippet: snippet(body), Err: err}
	}

	return nil
}

func validateRequest(req *Request) error {
	if req == nil || req.Path == "" {
		return ErrMissingPath
	}

	switch req.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return fmt.Errorf("unsupported method %q", req.Method)
	}

	if req.Method == http.MethodPost && emptyBody(req.Body) {
		return ErrMissingBody
	}

	return nil
}

// emptyBody reports whether a request body is absent or an empty container.
func emptyBody(body any) bool {
	if body == nil {
		return true
	}

	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return v.Len() == 0
	case reflect.Pointer:
		return v.IsNil()
	}

	return false
}

func snippet(body []byte) string {
	const max = 120
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}

// Fetch issues req on c and returns the decoded response as T.
func Fetch[T any](ctx context.Context, c *Client, req *Request) (T, error) {
	var out T
	err := c.Do(ctx, req, &out)
	return out, err
}
