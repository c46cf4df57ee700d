package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "test message: %s", "value")

	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidArgument)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_ARGUMENT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeExternalTool, cause, "solver failed")

	if err.Code != ErrCodeExternalTool {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeExternalTool)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// errors.Is should see through the wrapper
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeParse, "bad token")

	if !Is(err, ErrCodeParse) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeOutOfRange) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), ErrCodeParse) {
		t.Error("Is should not match a plain error")
	}

	// Code should survive additional fmt wrapping.
	wrapped := fmt.Errorf("context: %w", err)
	if !Is(wrapped, ErrCodeParse) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDivisionByZero, "zero cycle")); got != ErrCodeDivisionByZero {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeDivisionByZero)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode for plain error = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeDimensionMismatch, "tour has 5 entries, expected 6")
	if got := UserMessage(err); got != "tour has 5 entries, expected 6" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage for plain error = %q", got)
	}
}
