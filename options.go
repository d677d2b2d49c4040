package client

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	preserveBigInt     bool
	throttleRetryDelay time.Duration
	requestLogger      RequestLogger
	requestHeaders     map[string]string
	transport          Transport
}

func newClientOptions() *Options {
	return &Options{
		preserveBigInt:     true,
		throttleRetryDelay: 2 * time.Second,
		requestLogger:      &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
			"Accept":       "application/json",
		},
	}
}

// WithBigIntPrecision enables or disables the precision-safe rewrite of
// 17-digit integer values in response bodies. Enabled by default.
func WithBigIntPrecision(enabled bool) Option {
	return func(o *Options) {
		o.preserveBigInt = enabled
	}
}

// WithThrottleRetryDelay sets the fixed delay before the single retry of a
// rate-limited request. Values below 100ms are ignored.
func WithThrottleRetryDelay(delay time.Duration) Option {
	return func(o *Options) {
		if delay >= 100*time.Millisecond {
			o.throttleRetryDelay = delay
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithTransport replaces the default resty-backed transport. The transport
// must not retry on its own; the client owns the retry protocol.
func WithTransport(transport Transport) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "X-Api-Key") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func (o *Options) Validate() error {
	if o.throttleRetryDelay < 100*time.Millisecond {
		return errors.New("throttleRetryDelay must be at least 100ms")
	}

	if o.throttleRetryDelay > time.Minute {
		return fmt.Errorf("throttleRetryDelay must not exceed %s", time.Minute)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}
