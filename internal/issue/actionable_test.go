// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "parse project config"},
			expected: "failed to parse project config",
		},
		{
			name: "operation and resource",
			err: &ActionableError{
				Operation: "parse project config",
				Resource:  "/p/.importsortrc",
			},
			expected: "failed to parse project config: /p/.importsortrc",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "read settings",
				Resource:  "/cfg/config.yaml",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to read settings: /cfg/config.yaml: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapWithOperation(cause, "load settings")

	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not reach the cause")
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if err := WrapWithOperation(nil, "op"); err != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", err)
	}
	if err := WrapWithContext(nil, "op", "res"); err != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", err)
	}
}

func TestErrorContextBuilder(t *testing.T) {
	cause := errors.New("boom")

	err := NewErrorContext().
		WithOperation("parse project config").
		WithResource("/p/package.json").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() = nil, want error")
	}
	if err.Operation != "parse project config" || err.Resource != "/p/package.json" {
		t.Errorf("Build() = %+v, want operation and resource set", err)
	}
	if !errors.Is(err, cause) {
		t.Error("built error does not wrap the cause")
	}
}

func TestErrorContextRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("/p").Build(); err != nil {
		t.Errorf("Build() without operation = %+v, want nil", err)
	}
}
