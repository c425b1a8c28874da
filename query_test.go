package rutego

import (
	"strings"
	"testing"
)

func TestEncodeQueryEmpty(t *testing.T) {
	if got := EncodeQuery(nil); got != "" {
		t.Errorf("EncodeQuery(nil) = %q, want empty string", got)
	}
	if got := EncodeQuery(map[string]any{}); got != "" {
		t.Errorf("EncodeQuery(empty) = %q, want empty string", got)
	}
}

func TestEncodeQuerySkipsNilValues(t *testing.T) {
	got := EncodeQuery(map[string]any{"a": 1, "b": nil, "c": "x"})
	if !strings.HasPrefix(got, "?") {
		t.Fatalf("Expected leading '?', got %q", got)
	}
	if !strings.Contains(got, "a=1") || !strings.Contains(got, "c=x") {
		t.Errorf("Expected a and c encoded, got %q", got)
	}
	if strings.Contains(got, "b") {
		t.Errorf("Expected b omitted entirely, got %q", got)
	}
}

func TestEncodeQueryAllNilValues(t *testing.T) {
	if got := EncodeQuery(map[string]any{"a": nil}); got != "" {
		t.Errorf("Expected empty string when nothing survives filtering, got %q", got)
	}
}

func TestEncodeQueryCanonicalOrder(t *testing.T) {
	got := EncodeQuery(map[string]any{"z": 1, "a": 2})
	if got != "?a=2&z=1" {
		t.Errorf("Expected canonical key order, got %q", got)
	}
}

func TestEncodeQueryRepeatedKeys(t *testing.T) {
	got := EncodeQuery(map[string]any{"genre": []string{"drama", "crime"}})
	if got != "?genre=drama&genre=crime" {
		t.Errorf("Expected repeated pairs preserved, got %q", got)
	}

	got = EncodeQuery(map[string]any{"id": []any{1, nil, 2}})
	if got != "?id=1&id=2" {
		t.Errorf("Expected nil slice elements skipped, got %q", got)
	}
}

func TestEncodeQueryEscapesValues(t *testing.T) {
	got := EncodeQuery(map[string]any{"q": "dark knight"})
	if got != "?q=dark+knight" {
		t.Errorf("Expected escaped value, got %q", got)
	}
}

func TestEncodeQueryCoercesValues(t *testing.T) {
	got := EncodeQuery(map[string]any{"page": 2, "adult": false, "score": 7.5})
	if !strings.Contains(got, "page=2") || !strings.Contains(got, "adult=false") || !strings.Contains(got, "score=7.5") {
		t.Errorf("Expected coerced string forms, got %q", got)
	}
}
