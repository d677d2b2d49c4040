package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Request describes a single API call: the endpoint path relative to the
// versioned base URL, the HTTP method, and optional query parameters and
// body. The client transports bodies and responses as opaque structured
// data; it never interprets them.
type Request struct {
	Path   string
	Method string
	Query  url.Values
	Body   any
}

// RawResponse is the transport-level result of an exchange, before the
// precision rewrite and JSON decode are applied.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// Transport executes a single HTTP exchange. Implementations must not retry
// on their own; the client owns the retry protocol. The default transport is
// backed by resty; supply an alternative via [WithTransport].
type Transport interface {
	Send(ctx context.Context, req *Request) (*RawResponse, error)
}

type restyTransport struct {
	rc *resty.Client
}

func newRestyTransport(baseURL string, cfg Config, opts *Options) *restyTransport {
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/") + "/api/" + cfg.Version).
		SetHeaders(opts.requestHeaders).
		SetHeader("X-Api-Key", cfg.APIKey).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetRetryCount(0)

	return &restyTransport{rc: rc}
}

func (t *restyTransport) Send(ctx context.Context, req *Request) (*RawResponse, error) {
	r := t.rc.R().SetContext(ctx)

	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}

	// DELETE carries no body even if the descriptor has one.
	if req.Body != nil && req.Method != http.MethodGet && req.Method != http.MethodDelete {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, "/"+strings.TrimPrefix(req.Path, "/"))
	if err != nil {
		return nil, err
	}

	return &RawResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

func (t *restyTransport) close() {
	t.rc.GetClient().CloseIdleConnections()
}
