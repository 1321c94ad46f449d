package exitcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrAuth, "authentication failed")
	if err.Code != ErrAuth {
		t.Errorf("Code = %d, want %d", err.Code, ErrAuth)
	}
	if err.Message != "authentication failed" {
		t.Errorf("Message = %q, want %q", err.Message, "authentication failed")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrGeneral, "connection failed", cause)

	if err.Code != ErrGeneral {
		t.Errorf("Code = %d, want %d", err.Code, ErrGeneral)
	}
	if !errors.Is(err, cause) {
		t.Error("Wrap should preserve cause for errors.Is")
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrAuth, "token rejected"),
			want: "token rejected",
		},
		{
			name: "with cause",
			err:  Wrap(ErrGeneral, "connection failed", errors.New("timeout")),
			want: "connection failed: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"coded error", New(ErrAuth, "forbidden"), ErrAuth},
		{"wrapped coded", Wrap(ErrAuth, "forbidden", errors.New("403")), ErrAuth},
		{"plain error", errors.New("plain"), ErrGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrAuth, "forbidden")

	if !Is(err, ErrAuth) {
		t.Error("Is should return true for matching code")
	}
	if Is(err, ErrGeneral) {
		t.Error("Is should return false for non-matching code")
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrAuth, "authentication failed: %s", "invalid token")
	if err.Code != ErrAuth {
		t.Errorf("Code = %d, want %d", err.Code, ErrAuth)
	}
	want := "authentication failed: invalid token"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestCodeWithWrappedErrors(t *testing.T) {
	// Code() must extract codes from errors wrapped via fmt.Errorf %w.
	original := New(ErrAuth, "token rejected")
	wrapped := fmt.Errorf("dns update failed: %w", original)
	doubleWrapped := fmt.Errorf("command failed: %w", wrapped)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"original", original, ErrAuth},
		{"single wrapped", wrapped, ErrAuth},
		{"double wrapped", doubleWrapped, ErrAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrGeneral, "API call failed", cause)

	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("errors.Unwrap should work with Error")
	}

	errNoCause := New(ErrAuth, "forbidden")
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestErrorInterface(t *testing.T) {
	var _ error = &Error{}
	var _ error = New(ErrGeneral, "test")
	var _ error = Wrap(ErrGeneral, "test", nil)
}
