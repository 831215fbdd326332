package devicecode

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := newError(ErrMissingField, "device descriptor is missing required fields", io.EOF).
		WithDetail("fields", "brand").
		WithDetail("count", 1)

	msg := err.Error()
	for _, part := range []string{"[MISSING_FIELD]", "missing required fields", "(count=1, fields=brand)", "caused by: EOF"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestError_IsAndUnwrap(t *testing.T) {
	err := newError(ErrEncryptFailed, "sm2 encrypt", io.ErrUnexpectedEOF)
	wrapped := errors.Join(errors.New("outer"), err)

	if !errors.Is(wrapped, &Error{Code: ErrEncryptFailed}) {
		t.Error("errors.Is should match by code")
	}
	if errors.Is(wrapped, &Error{Code: ErrNonceFailed}) {
		t.Error("errors.Is matched a different code")
	}
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Error("cause should be reachable through Unwrap")
	}
	if !IsErrorCode(wrapped, ErrEncryptFailed) || IsErrorCode(nil, ErrEncryptFailed) {
		t.Error("IsErrorCode mismatch")
	}
}
