package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"roomslots/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    failure.CodeInvalidData,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestInvalidData(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("capacity must be greater than or equal to 0"),
			expected: &failure.Failure{Code: failure.CodeInvalidData, Message: "capacity must be greater than or equal to 0"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.InvalidData(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestInvalidConfig(t *testing.T) {
	result := failure.InvalidConfig("bucket name is required")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != failure.CodeInvalidConfig {
		t.Errorf("expected code to be %d, got %d", failure.CodeInvalidConfig, f.Code)
	}
}

func TestInternal(t *testing.T) {
	if failure.Internal(nil) != nil {
		t.Error("expected nil for nil error")
	}

	f, ok := failure.Internal(errors.New("disk full")).(*failure.Failure)
	if !ok {
		t.Fatal("expected *failure.Failure")
	}

	if f.Code != failure.CodeInternal || f.Message != "disk full" {
		t.Errorf("unexpected failure %+v", f)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "nil error", input: nil, expected: 0},
		{name: "plain error", input: errors.New("boom"), expected: failure.CodeInternal},
		{name: "invalid data", input: failure.InvalidDataFromString("bad hour"), expected: failure.CodeInvalidData},
		{
			name:     "wrapped invalid config",
			input:    fmt.Errorf("publish: %w", failure.InvalidConfig("missing bucket")),
			expected: failure.CodeInvalidConfig,
		},
		{name: "missing column sentinel", input: fmt.Errorf("hour: %w", failure.ErrMissingColumn), expected: failure.CodeInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.ExitCode(tt.input); got != tt.expected {
				t.Errorf("expected exit code %d, got %d", tt.expected, got)
			}
		})
	}
}
