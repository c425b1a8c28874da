package rutego

import (
	"context"
	"net/http"
)

// RequestOptions carries the per-call inputs for one route execution. It is
// constructed by the caller, consumed once and discarded; the client never
// retains it.
type RequestOptions struct {
	// Params supplies values for {name} placeholders in the path template.
	Params map[string]any

	// Query supplies query-string parameters; nil values are skipped.
	Query map[string]any

	// Body is JSON-serialized and attached for any method except GET and
	// HEAD, which never carry a body regardless of what is set here.
	Body any

	// Headers are per-call headers, layered over the client defaults;
	// caller values win on conflict.
	Headers map[string]string
}

// RequestHook runs after the outgoing request is fully built, before the
// network call. Returning a non-nil error aborts the call and propagates to
// the caller unmodified; the hook cannot otherwise alter the outcome.
type RequestHook func(ctx context.Context, req *http.Request) error

// ResponseHook runs with the raw response after the network call, before
// success/failure classification. Error propagation matches RequestHook.
type ResponseHook func(ctx context.Context, resp *http.Response) error

// ErrorHook runs when a response is classified as an HTTP failure (status
// outside the 2xx range), receiving a *CallError describing it. Error
// propagation matches RequestHook.
type ErrorHook func(ctx context.Context, err error) error

// Middleware wraps the transport call for cross-cutting concerns. Retries,
// caching and auth refresh are layered here rather than built in.
type Middleware func(req *http.Request, next RoundTripper) (*http.Response, error)

// RoundTripper represents the HTTP transport interface
type RoundTripper interface {
	RoundTrip(*http.Request) (*http.Response, error)
}

// RoundTripperFunc is a helper type for middleware
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Option represents a configuration option
type Option func(*Client)
