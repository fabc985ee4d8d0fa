package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidStrategy, "unknown strategy: %s", "greedy")

	if err.Code != ErrCodeInvalidStrategy {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidStrategy)
	}

	if err.Message != "unknown strategy: greedy" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown strategy: greedy")
	}

	expected := "INVALID_STRATEGY: unknown strategy: greedy"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidGraph, cause, "parse graph")

	if err.Code != ErrCodeInvalidGraph {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidGraph)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeRunNotFound,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "wrapped in plain error",
			err:      errors.Join(errors.New("outer"), New(ErrCodeRunNotFound, "inner")),
			code:     ErrCodeRunNotFound,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeFileNotFound, "missing")); got != ErrCodeFileNotFound {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeFileNotFound)
	}

	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidOrder, "bad order")); got != "bad order" {
		t.Errorf("UserMessage() = %v, want %v", got, "bad order")
	}

	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %v, want %v", got, "plain")
	}
}

func TestValidateNodeLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"valid", "n001", false},
		{"empty", "", true},
		{"control character", "a\x01b", true},
		{"too long", string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	if err := ValidateOutputPath("out/graph.json"); err != nil {
		t.Errorf("ValidateOutputPath() error = %v, want nil", err)
	}
	if err := ValidateOutputPath(""); err == nil {
		t.Error("ValidateOutputPath(\"\") should fail")
	}
	if err := ValidateOutputPath("a\x00b"); err == nil {
		t.Error("ValidateOutputPath() should reject null bytes")
	}
}
