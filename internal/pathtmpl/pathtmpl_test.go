package pathtmpl

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]any
		resolved string
		missing  []string
	}{
		{
			name:     "single placeholder",
			template: "/movie/{id}",
			params:   map[string]any{"id": 42},
			resolved: "/movie/42",
		},
		{
			name:     "missing placeholder left intact",
			template: "/movie/{id}",
			params:   map[string]any{},
			resolved: "/movie/{id}",
			missing:  []string{"id"},
		},
		{
			name:     "multiple missing in encounter order",
			template: "/{a}/{b}/{c}",
			params:   map[string]any{"b": 1},
			resolved: "/{a}/1/{c}",
			missing:  []string{"a", "c"},
		},
		{
			name:     "empty braces are literal",
			template: "/raw/{}/x",
			params:   map[string]any{"": "v"},
			resolved: "/raw/{}/x",
		},
		{
			name:     "unterminated brace is literal",
			template: "/movie/{id",
			params:   map[string]any{"id": 1},
			resolved: "/movie/{id",
		},
		{
			name:     "value is path escaped",
			template: "/tag/{name}",
			params:   map[string]any{"name": "a b"},
			resolved: "/tag/a%20b",
		},
		{
			name:     "no placeholders",
			template: "/movie/popular",
			params:   map[string]any{"id": 1},
			resolved: "/movie/popular",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, missing := Resolve(tt.template, tt.params)
			if resolved != tt.resolved {
				t.Errorf("Resolve() resolved = %q, want %q", resolved, tt.resolved)
			}
			if !reflect.DeepEqual(missing, tt.missing) {
				t.Errorf("Resolve() missing = %v, want %v", missing, tt.missing)
			}
		})
	}
}
