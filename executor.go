package rutego

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const contentTypeHeader = "Content-Type"

// Do executes one route against the client and decodes the response body
// into the route's bound type. The pipeline is strictly sequential:
// resolve path, encode query, build request, onRequest hook, middleware
// chain, network call, onResponse hook, classification, decode.
//
// Expected failures come back inside the Result: unresolved path parameters
// (reported before any network activity, all missing keys in one message)
// and non-2xx statuses (as "HTTP Error <status>: <statusText>"; the body is
// not inspected). The error return carries everything else: transport
// failures, undecodable bodies, route table violations and non-nil hook
// returns, none of which the executor absorbs.
//
// A 204 response is never decoded: the Result carries the zero value of T.
// Any other 2xx body is decoded as JSON.
func Do[T any](ctx context.Context, c *Client, route Route[T], opts *RequestOptions) (Result[T], error) {
	var zero Result[T]

	if opts == nil {
		opts = &RequestOptions{}
	}

	endpoint := route.Path
	start := time.Now()
	requestID := c.requestID()

	if err := c.routes.check(route.Method, route.Path, opts.Params); err != nil {
		c.metrics.RecordError(ErrorTypeRoute, route.Method, endpoint)
		return zero, err
	}

	resolved, err := ResolvePath(route.Path, opts.Params)
	if err != nil {
		if c.logRequests() {
			c.logger.Warn("Path resolution failed", "requestID", requestID, "endpoint", endpoint, "error", err.Error())
		}
		c.metrics.RecordError(ErrorTypeRequest, route.Method, endpoint)
		return Fail[T](err.Error()), nil
	}

	c.metrics.RecordRequestStart(route.Method, endpoint)
	defer c.metrics.RecordRequestEnd(route.Method, endpoint)

	resp, err := c.roundTrip(ctx, route.Method, resolved, endpoint, requestID, opts)
	if err != nil {
		c.metrics.RecordRequest(route.Method, endpoint, 0, time.Since(start))
		return zero, err
	}

	c.metrics.RecordRequest(route.Method, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The body is not surfaced on HTTP failure; drain it so the
		// underlying connection can be reused.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		msg := fmt.Sprintf("HTTP Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		c.metrics.RecordError(ErrorTypeHTTP, route.Method, endpoint)

		if c.logResponses() {
			c.logger.Warn("HTTP failure", "requestID", requestID, "endpoint", endpoint, "status", resp.StatusCode)
		}

		if c.onError != nil {
			c.metrics.RecordHook("on_error")
			callErr := &CallError{
				Type:       ErrorTypeHTTP,
				Message:    msg,
				StatusCode: resp.StatusCode,
				Method:     route.Method,
				URL:        responseURL(resp),
			}
			if hookErr := c.onError(ctx, callErr); hookErr != nil {
				return zero, hookErr
			}
		}

		return Fail[T](msg), nil
	}

	defer resp.Body.Close()

	var value T
	if resp.StatusCode == http.StatusNoContent {
		return Ok(value), nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordError(ErrorTypeNetwork, route.Method, endpoint)
		return zero, &CallError{
			Type:    ErrorTypeNetwork,
			Message: "reading response body failed",
			Method:  route.Method,
			URL:     responseURL(resp),
			Cause:   err,
		}
	}

	if err := json.Unmarshal(data, &value); err != nil {
		c.metrics.RecordError(ErrorTypeDecode, route.Method, endpoint)
		return zero, &CallError{
			Type:       ErrorTypeDecode,
			Message:    "decoding response body failed",
			StatusCode: resp.StatusCode,
			Method:     route.Method,
			URL:        responseURL(resp),
			Cause:      err,
		}
	}

	return Ok(value), nil
}

// roundTrip builds and performs the transport request, running the
// onRequest and onResponse hooks at their fixed points.
func (c *Client) roundTrip(ctx context.Context, method, resolvedPath, endpoint, requestID string, opts *RequestOptions) (*http.Response, error) {
	finalURL := c.baseURL + resolvedPath + EncodeQuery(opts.Query)

	// GET and HEAD never carry a body, regardless of what the caller set.
	var body io.Reader
	bodyAttached := false
	if opts.Body != nil && method != http.MethodGet && method != http.MethodHead {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, &CallError{
				Type:    ErrorTypeRequest,
				Message: "encoding request body failed",
				Method:  method,
				URL:     finalURL,
				Cause:   err,
			}
		}
		body = bytes.NewReader(payload)
		bodyAttached = true
	}

	req, err := http.NewRequestWithContext(ctx, method, finalURL, body)
	if err != nil {
		return nil, &CallError{
			Type:    ErrorTypeRequest,
			Message: "building request failed",
			Method:  method,
			URL:     finalURL,
			Cause:   err,
		}
	}

	// Header precedence, lowest to highest: client defaults, then per-call.
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}
	if bodyAttached && req.Header.Get(contentTypeHeader) == "" {
		req.Header.Set(contentTypeHeader, "application/json")
	}

	if c.logRequests() {
		c.logger.Debug("Starting request", "requestID", requestID, "method", method, "url", finalURL, "endpoint", endpoint)
	}

	if c.onRequest != nil {
		c.metrics.RecordHook("on_request")
		if c.logHooks() {
			c.logger.Debug("Invoking onRequest hook", "requestID", requestID, "endpoint", endpoint)
		}
		if hookErr := c.onRequest(ctx, req); hookErr != nil {
			return nil, hookErr
		}
	}

	resp, err := c.executeMiddleware(req)
	if err != nil {
		c.metrics.RecordError(ErrorTypeNetwork, method, endpoint)
		if c.logRequests() {
			c.logger.Warn("Network request failed", "requestID", requestID, "endpoint", endpoint, "error", err.Error())
		}
		return nil, &CallError{
			Type:    ErrorTypeNetwork,
			Message: "network request failed",
			Method:  method,
			URL:     finalURL,
			Cause:   err,
		}
	}

	if c.logResponses() {
		c.logger.Debug("Received response", "requestID", requestID, "endpoint", endpoint, "status", resp.StatusCode)
	}

	if c.onResponse != nil {
		c.metrics.RecordHook("on_response")
		if c.logHooks() {
			c.logger.Debug("Invoking onResponse hook", "requestID", requestID, "endpoint", endpoint)
		}
		if hookErr := c.onResponse(ctx, resp); hookErr != nil {
			resp.Body.Close()
			return nil, hookErr
		}
	}

	return resp, nil
}

func responseURL(resp *http.Response) string {
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return ""
}
