// Where: internal/app/error_helpers_test.go
// What: Tests for exit helpers and parse error handling.
// Why: Error output is part of the CLI contract.
package app

import (
	"bytes"
	"errors"
	"testing"
)

func TestExitWithError(t *testing.T) {
	var buf bytes.Buffer
	code := exitWithError(&buf, errors.New("test error"))

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	want := "✗ test error\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestExitWithSuggestion(t *testing.T) {
	var buf bytes.Buffer
	code := exitWithSuggestion(&buf, "Something went wrong.", []string{"try this", "or that"})

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	output := buf.String()
	if !contains(output, "✗ Something went wrong.") {
		t.Errorf("missing error message in output: %s", output)
	}
	if !contains(output, "Next steps:") {
		t.Errorf("missing 'Next steps:' in output: %s", output)
	}
	if !contains(output, "try this") {
		t.Errorf("missing suggestion in output: %s", output)
	}
}

func TestHandleParseErrorNewWithoutName(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(`expected "<name>"`)
	code := handleParseError([]string{"new"}, err, &buf)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !contains(buf.String(), "Project name required") {
		t.Errorf("expected project name required message: %s", buf.String())
	}
}

func TestHandleParseErrorGeneric(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New("some other error")
	code := handleParseError([]string{"check"}, err, &buf)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !contains(buf.String(), "✗ some other error") {
		t.Errorf("expected error to be printed: %s", buf.String())
	}
}

func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}
