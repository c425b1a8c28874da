package rutego

import (
	"strings"
	"testing"
)

func TestResultOk(t *testing.T) {
	res := Ok(42)

	if !res.OK() {
		t.Fatal("Ok() must produce the success variant")
	}
	if res.Value() != 42 {
		t.Errorf("Expected value 42, got %d", res.Value())
	}
	if res.Err() != "" {
		t.Errorf("Success variant must carry no error, got %q", res.Err())
	}
}

func TestResultFail(t *testing.T) {
	res := Fail[int]("boom")

	if res.OK() {
		t.Fatal("Fail() must produce the failure variant")
	}
	if res.Err() != "boom" {
		t.Errorf("Expected error boom, got %q", res.Err())
	}
	if res.Value() != 0 {
		t.Errorf("Failure variant must carry the zero value, got %d", res.Value())
	}
}

func TestResultFailf(t *testing.T) {
	res := Failf[string]("HTTP Error %d: %s", 404, "Not Found")

	if res.OK() {
		t.Fatal("Failf() must produce the failure variant")
	}
	if res.Err() != "HTTP Error 404: Not Found" {
		t.Errorf("Unexpected message: %q", res.Err())
	}
}

func TestResultZeroValueIsFailure(t *testing.T) {
	var res Result[int]
	if res.OK() {
		t.Error("Zero Result must not be the success variant")
	}
}

func TestResultString(t *testing.T) {
	if s := Ok("x").String(); !strings.HasPrefix(s, "ok(") {
		t.Errorf("Unexpected String() for success: %q", s)
	}
	if s := Fail[string]("bad").String(); !strings.Contains(s, "bad") {
		t.Errorf("Unexpected String() for failure: %q", s)
	}
}
