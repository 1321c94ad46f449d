package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnsosoka/jscom-cli/internal/api"
	"github.com/johnsosoka/jscom-cli/internal/exitcode"
)

func TestRenderAPIError_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"authentication", &api.Error{Kind: api.KindAuthentication, Detail: "Forbidden"}, exitcode.ErrAuth},
		{"validation", &api.Error{Kind: api.KindValidation, Detail: "bad payload"}, exitcode.ErrGeneral},
		{"server", &api.Error{Kind: api.KindServer, Detail: "HTTP 500"}, exitcode.ErrGeneral},
		{"network", &api.Error{Kind: api.KindNetwork, Detail: "connection refused"}, exitcode.ErrGeneral},
		{"uncaught plain error", errors.New("boom"), exitcode.ErrGeneral},
		{
			"wrapped api error keeps its code",
			fmt.Errorf("dns update: %w", &api.Error{Kind: api.KindAuthentication, Detail: "Forbidden"}),
			exitcode.ErrAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderAPIError(tt.err))
		})
	}
}

func TestSilentExit(t *testing.T) {
	err := SilentExit(exitcode.ErrAuth)
	code, ok := IsSilentExit(err)
	assert.True(t, ok)
	assert.Equal(t, exitcode.ErrAuth, code)

	wrapped := fmt.Errorf("command: %w", err)
	code, ok = IsSilentExit(wrapped)
	assert.True(t, ok)
	assert.Equal(t, exitcode.ErrAuth, code)

	_, ok = IsSilentExit(errors.New("plain"))
	assert.False(t, ok)

	_, ok = IsSilentExit(nil)
	assert.False(t, ok)
}

func TestRequireSubcommand(t *testing.T) {
	err := requireSubcommand(dnsCmd, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires a subcommand")

	err = requireSubcommand(dnsCmd, []string{"frobnicate"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "frobnicate"`)
}
