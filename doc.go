// Package client provides an HTTP client for the SkuFlow order-management API.
//
// The client wraps [github.com/go-resty/resty/v2] with precision-safe JSON
// decoding for large integer identifiers, a single-shot retry on rate-limit
// responses, and pluggable logging.
//
// # Basic Usage
//
//	c, err := client.New("https://api.example.com", client.Config{
//	    APIKey:   "my-key",
//	    Username: "my-user",
//	    Password: "my-pass",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	var orders OrderPage
//	if err := c.Get(ctx, "/orders", nil, &orders); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Credentials are supplied as [Config]; [New] fails with a [ConfigError] if
// any credential field is empty, before any network I/O. All other
// configuration is supplied as [Option] functions passed to [New]. Invalid
// option values are silently ignored and the default is retained.
//
// # Precision-Safe Decoding
//
// The API encodes order identifiers as 17-digit JSON integers, which
// encoding/json would round to float64 and corrupt. When precision mode is
// enabled (the default), bare 17-digit integer values in the response body
// are rewritten to JSON strings before decoding, so callers receive them as
// string-typed fields. Disable with [WithBigIntPrecision] if the endpoint is
// known to carry no large identifiers. See [QuoteBigIntValues] for the exact
// rewrite rule and its limitations.
//
// # Retry Behaviour
//
// An HTTP 429 (rate limit) response is retried exactly once after a fixed
// delay ([WithThrottleRetryDelay], default 2s), re-issuing the identical
// request. If the retry also fails, that failure is returned; there is no
// backoff and no further attempt. Any non-429 failure is returned
// immediately. Callers needing a stronger resilience policy must wrap the
// client themselves.
//
// # Authentication
//
// Every request carries the API key in the X-Api-Key header and HTTP Basic
// credentials from [Config]. Both are required.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZerologLogger] for a
// ready-made zerolog integration. The default [NoopLogger] discards all log
// output. Ensure your implementation redacts credentials from request and
// response data before persisting logs.
package client
