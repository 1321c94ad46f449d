package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnsosoka/jscom-cli/internal/api"
	"github.com/johnsosoka/jscom-cli/internal/config"
	"github.com/johnsosoka/jscom-cli/internal/exitcode"
	"github.com/johnsosoka/jscom-cli/internal/style"
)

var (
	ipJSON  bool
	ipQuiet bool
)

var ipCmd = &cobra.Command{
	Use:   "ip",
	Short: "Get your public IP address",
	Long: `Get your public IP address as seen by the API.

Examples:
  jscom ip            # Human-readable table
  jscom ip --json     # JSON output
  jscom ip --quiet    # Just the IP, nothing else`,
	Args: cobra.NoArgs,
	RunE: runIP,
}

func init() {
	rootCmd.AddCommand(ipCmd)
	ipCmd.Flags().BoolVar(&ipJSON, "json", false, "Output as JSON")
	ipCmd.Flags().BoolVarP(&ipQuiet, "quiet", "q", false, "Output only the IP address")
}

func runIP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(config.Options{BaseURL: rootBaseURL, AuthToken: rootToken})
	if err != nil {
		style.PrintError("%v", err)
		return SilentExit(exitcode.ErrGeneral)
	}

	client, err := api.New(cfg)
	if err != nil {
		style.PrintError("%v", err)
		return SilentExit(exitcode.ErrGeneral)
	}
	defer client.Close()

	result, err := client.MyIP()
	if err != nil {
		renderAPIError(err)
		return SilentExit(exitcode.ErrGeneral)
	}

	out, err := formatIP(result, ipJSON, ipQuiet)
	if err != nil {
		style.PrintError("%v", err)
		return SilentExit(exitcode.ErrGeneral)
	}
	fmt.Print(out)
	return nil
}

// formatIP renders the result for the selected output mode. Quiet wins
// over JSON: quiet output suppresses both the table and the JSON form.
func formatIP(result *api.IPResult, jsonOut, quiet bool) (string, error) {
	switch {
	case quiet:
		return result.IP + "\n", nil
	case jsonOut:
		out, err := json.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("encode result: %w", err)
		}
		return string(out) + "\n", nil
	default:
		return style.NewTable(style.Column{Name: "Your Public IP", Width: 15}).
			AddRow(result.IP).
			Render(), nil
	}
}
