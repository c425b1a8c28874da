package rutego

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client is a typed HTTP client for one REST-like JSON API. It holds the
// base URL, default headers, lifecycle hooks, middleware and observability
// wiring; all per-call state lives in RequestOptions. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	middleware []Middleware
	routes     RouteTable
	onRequest  RequestHook
	onResponse ResponseHook
	onError    ErrorHook
	metrics    *MetricsCollector
	debug      *DebugConfig
	logger     Logger

	validationError error
}

// New constructs a Client for the given base URL using the provided
// functional options. The base URL is used verbatim: no trailing-slash or
// duplicate-slash normalization is performed when building request URLs. A
// best effort validation is performed; call IsValid / ValidationError for
// errors.
func New(baseURL string, options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:    baseURL,
		headers:    map[string]string{},
		middleware: []Middleware{},
		debug:      DefaultDebugConfig(),
	}

	for _, option := range options {
		option(client)
	}

	if err := client.ValidateConfiguration(); err != nil {
		client.validationError = err
	}

	return client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}

// ValidateConfigurationStrict panics if configuration is invalid.
func (c *Client) ValidateConfigurationStrict() {
	if err := c.ValidateConfiguration(); err != nil {
		panic(fmt.Sprintf("invalid client configuration: %v", err))
	}
}

// ValidateConfiguration validates the client configuration and returns an
// error if invalid.
func (c *Client) ValidateConfiguration() error {
	var errors []string

	errors = append(errors, c.validateBaseURL()...)
	errors = append(errors, c.validateHTTPClientConfig()...)
	errors = append(errors, c.validateMiddlewareConfig()...)
	errors = append(errors, c.validateDebugConfig()...)
	errors = append(errors, c.validateRouteTableConfig()...)

	if len(errors) > 0 {
		return &CallError{
			Type:    ErrorTypeValidation,
			Message: "configuration validation failed",
			Cause:   fmt.Errorf("validation errors: %v", errors),
		}
	}

	return nil
}

func (c *Client) validateBaseURL() []string {
	var errors []string

	if c.baseURL == "" {
		errors = append(errors, "baseURL must not be empty")
		return errors
	}

	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		errors = append(errors, fmt.Sprintf("baseURL is not a valid URL: %v", err))
		return errors
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errors = append(errors, "baseURL scheme must be http or https")
	}
	if parsed.Host == "" {
		errors = append(errors, "baseURL must include a host")
	}

	return errors
}

func (c *Client) validateHTTPClientConfig() []string {
	var errors []string

	if c.httpClient == nil {
		errors = append(errors, "HTTP client cannot be nil")
	}

	return errors
}

func (c *Client) validateMiddlewareConfig() []string {
	var errors []string

	for i, middleware := range c.middleware {
		if middleware == nil {
			errors = append(errors, fmt.Sprintf("middleware[%d] cannot be nil", i))
		}
	}

	return errors
}

func (c *Client) validateDebugConfig() []string {
	var errors []string

	if c.debug != nil && c.debug.Enabled {
		if c.debug.RequestIDGen == nil {
			errors = append(errors, "debug RequestIDGen must be set when debug is enabled")
		}
		if c.logger == nil {
			errors = append(errors, "logger must be set when debug is enabled")
		}
	}

	return errors
}

func (c *Client) validateRouteTableConfig() []string {
	var errors []string

	for path, methods := range c.routes {
		if len(path) == 0 || path[0] != '/' {
			errors = append(errors, fmt.Sprintf("route table path %q must start with '/'", path))
		}
		for method := range methods {
			if !knownMethods[method] {
				errors = append(errors, fmt.Sprintf("route table method %q for path %q is not a known verb", method, path))
			}
		}
	}

	return errors
}

// executeMiddleware runs the transport call through the middleware chain.
func (c *Client) executeMiddleware(req *http.Request) (*http.Response, error) {
	if len(c.middleware) == 0 {
		return c.httpClient.Do(req)
	}

	current := RoundTripperFunc(c.httpClient.Do)

	for i := len(c.middleware) - 1; i >= 0; i-- {
		middleware := c.middleware[i]
		next := current
		current = RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return middleware(r, next)
		})
	}

	return current.RoundTrip(req)
}

func (c *Client) logRequests() bool {
	return c.debug != nil && c.debug.Enabled && c.debug.LogRequests && c.logger != nil
}

func (c *Client) logResponses() bool {
	return c.debug != nil && c.debug.Enabled && c.debug.LogResponses && c.logger != nil
}

func (c *Client) logHooks() bool {
	return c.debug != nil && c.debug.Enabled && c.debug.LogHooks && c.logger != nil
}

func (c *Client) requestID() string {
	if c.debug != nil && c.debug.Enabled && c.debug.RequestIDGen != nil {
		return c.debug.RequestIDGen()
	}
	return ""
}
