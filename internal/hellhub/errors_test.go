package hellhub

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindRequest, "request"},
		{KindStatus, "status"},
		{KindDecode, "decode"},
		{KindUnavailable, "unavailable"},
		{KindAPI, "api"},
		{ErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorMessageIncludesOp(t *testing.T) {
	err := &Error{Kind: KindStatus, Op: "get /war", StatusCode: 503}

	msg := err.Error()
	if want := "get /war"; !strings.Contains(msg, want) {
		t.Errorf("Expected error message to contain %q, got %q", want, msg)
	}
	if want := "503"; !strings.Contains(msg, want) {
		t.Errorf("Expected error message to contain %q, got %q", want, msg)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &Error{Kind: KindRequest, Op: "get /war", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := KindOf(fmt.Errorf("plain error")); got != KindRequest {
		t.Errorf("Expected foreign errors to map to KindRequest, got %v", got)
	}
}
