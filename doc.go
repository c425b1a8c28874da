// Package rutego is a typed HTTP client for REST-like JSON APIs. Routes are
// declared once as typed values binding an HTTP method and a path template to
// a response type; executing one performs path substitution, query encoding,
// request construction and JSON decoding in a single call:
//
//   - Typed routes – Get[T] / Post[T] / Put[T] / Patch[T] / Delete[T] bind a
//     path template to its response type at compile time
//   - Error-as-value results – expected failures (missing path parameters,
//     non-2xx statuses) come back inside Result[T]; transport and decode
//     failures use the ordinary error return
//   - Lifecycle hooks (onRequest / onResponse / onError) plus a middleware
//     chain for cross-cutting concerns (auth, tracing, retries layered on top)
//   - Optional runtime route table validating call sites against a declared
//     schema, loadable from a YAML manifest
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - A Client is immutable after construction and safe for concurrent use
//   - Each call is an independent, stateless run of the same pipeline
//
// Typical usage:
//
//	client := rutego.New("https://api.example.com",
//	    rutego.WithHeader("Authorization", "Bearer "+token),
//	    rutego.WithMetrics(),
//	)
//
//	popular := rutego.Get[MovieList]("/movie/popular")
//
//	res, err := rutego.Do(ctx, client, popular, &rutego.RequestOptions{
//	    Query: map[string]any{"page": 2},
//	})
//	if err != nil {
//	    // transport, decode or hook failure
//	}
//	if !res.OK() {
//	    // e.g. "HTTP Error 404: Not Found"
//	    log.Println(res.Err())
//	}
//
// The library avoids opinionated logging: provide a Logger (e.g. via
// WithSimpleLogger) and enable debug flags selectively (WithDebug /
// WithDebugConfig) for insight without noise.
package rutego
