// Package cmd provides CLI commands for the jscom tool.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnsosoka/jscom-cli/internal/exitcode"
)

// Global flag values, resolved ahead of env vars and defaults by the
// configuration layer.
var (
	rootBaseURL string
	rootToken   string
)

var rootCmd = &cobra.Command{
	Use:     "jscom",
	Short:   "CLI for the jscom-mini-services API",
	Version: Version,
	Long: `jscom talks to the jscom-mini-services HTTP API.

It can discover your current public IP address and push it into a DNS
A record, which makes it a small building block for dynamic-DNS setups
such as a home server behind a changing IP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		// Commands that already rendered their failure signal the code
		// via a silent exit.
		if code, ok := IsSilentExit(err); ok {
			return code
		}
		// Anything else (flag parse errors, uncaught failures) gets a
		// generic rendering so the process never ends unstructured.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitcode.Code(err)
	}
	return exitcode.Success
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootBaseURL, "base-url", "",
		"API base URL (overrides JSCOM_API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&rootToken, "token", "",
		"Authentication token (overrides JSCOM_API_TOKEN)")
}

// buildCommandPath walks the command hierarchy to build the full
// command path, e.g. "jscom dns update".
func buildCommandPath(cmd *cobra.Command) string {
	var parts []string
	for c := cmd; c != nil; c = c.Parent() {
		parts = append([]string{c.Name()}, parts...)
	}
	return strings.Join(parts, " ")
}

// requireSubcommand returns an error for parent commands invoked
// without a subcommand. Without this, Cobra silently shows help and
// exits 0 for unknown subcommands like "jscom dns foobar", masking
// errors.
func requireSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("requires a subcommand\n\nRun '%s --help' for usage", buildCommandPath(cmd))
	}
	return fmt.Errorf("unknown command %q for %q\n\nRun '%s --help' for available commands",
		args[0], buildCommandPath(cmd), buildCommandPath(cmd))
}
