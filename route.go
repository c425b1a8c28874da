package rutego

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Route binds an HTTP method and a path template to the response type its
// body decodes into. Declaring routes as package-level values gives every
// call site a compile-time checked (method, path, type) triple:
//
//	var movieDetail = rutego.Get[Movie]("/movie/{movie_id}")
//
// Status is the success status the route expects to decode against. It only
// selects the decode branch; at runtime any 2xx status is treated as
// success regardless.
type Route[T any] struct {
	Method string
	Path   string
	Status int
}

// Get declares a GET route decoding a 200 response into T.
func Get[T any](path string) Route[T] {
	return Route[T]{Method: http.MethodGet, Path: path, Status: http.StatusOK}
}

// Post declares a POST route decoding a 201 response into T.
func Post[T any](path string) Route[T] {
	return Route[T]{Method: http.MethodPost, Path: path, Status: http.StatusCreated}
}

// Put declares a PUT route decoding a 200 response into T.
func Put[T any](path string) Route[T] {
	return Route[T]{Method: http.MethodPut, Path: path, Status: http.StatusOK}
}

// Patch declares a PATCH route decoding a 200 response into T.
func Patch[T any](path string) Route[T] {
	return Route[T]{Method: http.MethodPatch, Path: path, Status: http.StatusOK}
}

// Delete declares a DELETE route expecting a bodiless 204 response. T is
// typically struct{}.
func Delete[T any](path string) Route[T] {
	return Route[T]{Method: http.MethodDelete, Path: path, Status: http.StatusNoContent}
}

// RouteSpec declares what one (path, method) pair accepts and returns. It is
// schema data only; the client consults it at the call boundary when a
// route table is configured.
type RouteSpec struct {
	// Params lists the path parameter names the route declares.
	Params []string `yaml:"params"`
	// Statuses lists the response statuses the route documents.
	Statuses []int `yaml:"statuses"`
}

// PathRoutes maps an HTTP method to its RouteSpec for one path template.
type PathRoutes map[string]RouteSpec

// RouteTable maps path templates to the methods they declare. When set on a
// Client via WithRouteTable, every call is checked against it before any
// network activity: undeclared path/method pairs and undeclared path
// parameters are rejected. This shifts the source schema's compile-time
// guarantee to a first-call-time check for tables assembled at runtime.
type RouteTable map[string]PathRoutes

var knownMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
	http.MethodHead:   true,
}

// check validates one call against the table. A nil table allows everything.
func (t RouteTable) check(method, path string, params map[string]any) error {
	if t == nil {
		return nil
	}

	spec, ok := t[path][strings.ToUpper(method)]
	if !ok {
		return &CallError{
			Type:    ErrorTypeRoute,
			Message: fmt.Sprintf("%s %s", method, path),
			Method:  method,
			URL:     path,
			Cause:   ErrUndeclaredRoute,
		}
	}

	if len(params) == 0 {
		return nil
	}
	declared := make(map[string]bool, len(spec.Params))
	for _, name := range spec.Params {
		declared[name] = true
	}
	var unknown []string
	for name := range params {
		if !declared[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &CallError{
			Type:    ErrorTypeRoute,
			Message: strings.Join(unknown, ", "),
			Method:  method,
			URL:     path,
			Cause:   ErrUndeclaredParam,
		}
	}
	return nil
}

type routeManifest struct {
	Routes map[string]map[string]RouteSpec `yaml:"routes"`
}

// LoadRouteTable parses a YAML route manifest into a RouteTable. Method keys
// are case-insensitive in the manifest and normalized to upper case:
//
//	routes:
//	  /movie/{movie_id}:
//	    get:
//	      params: [movie_id]
//	      statuses: [200]
func LoadRouteTable(r io.Reader) (RouteTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read route manifest: %w", err)
	}

	var manifest routeManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse route manifest: %w", err)
	}

	table := make(RouteTable, len(manifest.Routes))
	for path, methods := range manifest.Routes {
		if !strings.HasPrefix(path, "/") {
			return nil, fmt.Errorf("route manifest: path %q must start with '/'", path)
		}
		routes := make(PathRoutes, len(methods))
		for method, spec := range methods {
			upper := strings.ToUpper(method)
			if !knownMethods[upper] {
				return nil, fmt.Errorf("route manifest: unknown method %q for path %q", method, path)
			}
			routes[upper] = spec
		}
		table[path] = routes
	}
	return table, nil
}
