package rutego

import (
	"net/http"
	"time"
)

// WithHeaders merges default headers sent with every request. Per-call
// headers win over these on conflict.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithHeader sets one default header.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHTTPClient sets a custom HTTP client as the transport primitive.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.httpClient != nil {
			c.httpClient.Timeout = d
		}
	}
}

// WithMiddleware adds middleware to the client. Middleware wraps the
// transport call in declaration order (the first added is outermost).
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}

// WithRouteTable enables call-boundary validation against a declared route
// schema. Calls naming undeclared path/method pairs or undeclared path
// parameters are rejected before any network activity.
func WithRouteTable(table RouteTable) Option {
	return func(c *Client) {
		c.routes = table
	}
}

// WithOnRequest sets the hook invoked after the request is built, before
// the network call.
func WithOnRequest(hook RequestHook) Option {
	return func(c *Client) {
		c.onRequest = hook
	}
}

// WithOnResponse sets the hook invoked with the raw response, before
// success/failure classification.
func WithOnResponse(hook ResponseHook) Option {
	return func(c *Client) {
		c.onResponse = hook
	}
}

// WithOnError sets the hook invoked when a response is classified as an
// HTTP failure.
func WithOnError(hook ErrorHook) Option {
	return func(c *Client) {
		c.onError = hook
	}
}

// WithMetrics enables Prometheus metrics collection
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithDebug enables debug logging with default configuration
func WithDebug() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
	}
}

// WithDebugConfig sets custom debug configuration
func WithDebugConfig(config *DebugConfig) Option {
	return func(c *Client) {
		c.debug = config
	}
}

// WithLogger sets a custom logger for debug output
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger
func WithSimpleLogger() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
		c.logger = NewSimpleLogger()
	}
}

// WithRequestIDGenerator sets a custom function for generating request IDs
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.RequestIDGen = gen
	}
}
