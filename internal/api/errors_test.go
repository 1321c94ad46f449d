package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNetwork, "network"},
		{KindValidation, "validation"},
		{KindAuthentication, "authentication"},
		{KindServer, "server"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestError_Error(t *testing.T) {
	err := newError(KindAuthentication, "Forbidden: Invalid token")
	assert.Equal(t, "Forbidden: Invalid token", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := wrapError(KindNetwork, "failed to connect to API: connection refused", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))

	bare := newError(KindServer, "HTTP 500")
	assert.Nil(t, errors.Unwrap(bare))
}

func TestError_SurvivesWrapping(t *testing.T) {
	original := newError(KindAuthentication, "Forbidden")
	wrapped := fmt.Errorf("dns update: %w", original)

	var ae *Error
	assert.ErrorAs(t, wrapped, &ae)
	assert.Equal(t, KindAuthentication, ae.Kind)
}

func TestParseErrorBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "error and message",
			status: 403,
			body:   `{"error":"Forbidden","message":"Invalid token"}`,
			want:   "Forbidden: Invalid token",
		},
		{
			name:   "error only",
			status: 400,
			body:   `{"error":"Unauthorized"}`,
			want:   "Unauthorized",
		},
		{
			name:   "json without error key falls back to the body",
			status: 500,
			body:   `{"detail":"something else"}`,
			want:   `{"detail":"something else"}`,
		},
		{
			name:   "non-json body returned raw",
			status: 502,
			body:   "<html>Bad Gateway</html>",
			want:   "<html>Bad Gateway</html>",
		},
		{
			name:   "empty body names the status",
			status: 500,
			body:   "",
			want:   "HTTP 500",
		},
		{
			name:   "whitespace-only body names the status",
			status: 503,
			body:   "  \n ",
			want:   "HTTP 503",
		},
		{
			name:   "non-string error value stringified",
			status: 400,
			body:   `{"error":42}`,
			want:   "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseErrorBody(tt.status, []byte(tt.body)))
		})
	}
}
