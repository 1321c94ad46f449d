package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/johnsosoka/jscom-cli/internal/api"
	"github.com/johnsosoka/jscom-cli/internal/config"
	"github.com/johnsosoka/jscom-cli/internal/exitcode"
	"github.com/johnsosoka/jscom-cli/internal/style"
)

// renderAPIError prints a labeled message for a failed API call and
// returns the exit code the failure maps to. Authentication is the one
// kind with its own code (2): it signals a credential problem the
// operator can fix. Everything else, classified or not, is a 1.
func renderAPIError(err error) int {
	var ae *api.Error
	if !errors.As(err, &ae) {
		style.PrintError("Unexpected error: %v", err)
		return exitcode.ErrGeneral
	}

	switch ae.Kind {
	case api.KindAuthentication:
		style.PrintError("Authentication failed: %v", ae)
		fmt.Fprintf(os.Stderr, "%s set %s or use --token\n", style.Dim.Render("hint:"), config.EnvToken)
		return exitcode.ErrAuth
	case api.KindValidation:
		style.PrintError("Validation error: %v", ae)
		return exitcode.ErrGeneral
	case api.KindServer:
		style.PrintError("Server error: %v", ae)
		return exitcode.ErrGeneral
	case api.KindNetwork:
		style.PrintError("Network error: %v", ae)
		return exitcode.ErrGeneral
	default:
		style.PrintError("API error: %v", ae)
		return exitcode.ErrGeneral
	}
}

// printChangeInfo renders the provider change metadata, one key/value
// pair per line with keys sorted for stable output.
func printChangeInfo(info map[string]interface{}) {
	if len(info) == 0 {
		return
	}

	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println()
	fmt.Println(style.Bold.Render("Change Info:"))
	for _, k := range keys {
		fmt.Printf("  %s %v\n", style.Dim.Render(k+":"), info[k])
	}
}
