package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInternal, "oops")
	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if err.Message != "oops" {
		t.Errorf("expected message 'oops', got %q", err.Message)
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("section", "unknown section")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "section" {
		t.Errorf("expected field=section, got %v", err.Details["field"])
	}

	noField := InvalidInput("", "bad")
	if _, ok := noField.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_MissingField_Success(t *testing.T) {
	err := MissingField("name")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "name") {
		t.Errorf("expected message to name the field, got %q", err.Message)
	}
}

func TestAppError_SectionFailed_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("callable failed")
	err := SectionFailed("Join", cause)
	if err.Code != ErrCodeSectionFailed {
		t.Errorf("expected SECTION_FAILED, got %s", err.Code)
	}
	if err.Details["section"] != "Join" {
		t.Errorf("expected section=Join, got %v", err.Details["section"])
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if err.ExitCode() != 3 {
		t.Errorf("expected exit code 3, got %d", err.ExitCode())
	}
}

func TestAppError_InvalidConfig(t *testing.T) {
	cause := fmt.Errorf("bad yaml")
	err := InvalidConfig("seqdemo", cause)
	if err.Code != ErrCodeInvalidConfig || err.Cause != cause {
		t.Errorf("unexpected error %+v", err)
	}
	if err.Details["service"] != "seqdemo" {
		t.Errorf("expected service=seqdemo, got %v", err.Details["service"])
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeInvalidInput, 2},
		{ErrCodeInvalidConfig, 2},
		{ErrCodeSectionFailed, 3},
		{ErrCodeOutputFailed, 4},
		{ErrCodeInternal, 1},
		{ErrorCode("SOMETHING_ELSE"), 1},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := ExitCode(tc.code); got != tc.want {
				t.Errorf("ExitCode(%s) = %d, want %d", tc.code, got, tc.want)
			}
		})
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := OutputFailed(nil).WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := SectionFailed("Map", nil).WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["section"] != "Map" {
		t.Error("expected original details to be preserved")
	}

	err.WithDetails(map[string]any{"another": "detail"})
	if err.Details["another"] != "detail" || err.Details["extra"] != "info" {
		t.Error("expected details to accumulate across merges")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := Internal(nil).WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
	err.WithDetail("key", "other")
	if err.Details["key"] != "other" {
		t.Errorf("expected overwrite, got %v", err.Details["key"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	s := Validation("name: is required").Error()
	if s != "INVALID_INPUT: name: is required" {
		t.Errorf("unexpected format %q", s)
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", Internal(nil))
	appErr, ok := AsAppError(wrapped)
	if !ok || appErr.Code != ErrCodeInternal {
		t.Errorf("expected to unwrap AppError, got %v %v", appErr, ok)
	}
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError true")
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected plain error not to be an AppError")
	}
}
