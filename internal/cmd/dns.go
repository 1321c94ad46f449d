package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnsosoka/jscom-cli/internal/api"
	"github.com/johnsosoka/jscom-cli/internal/config"
	"github.com/johnsosoka/jscom-cli/internal/exitcode"
	"github.com/johnsosoka/jscom-cli/internal/style"
)

var dnsCmd = &cobra.Command{
	Use:   "dns",
	Short: "DNS management commands",
	RunE:  requireSubcommand,
}

var (
	dnsUpdateDomain       string
	dnsUpdateIP           string
	dnsUpdateUseCurrentIP bool
)

var dnsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a DNS A record",
	Long: `Update a DNS A record through the API.

Either --ip or --use-current-ip must be provided (but not both).

Examples:
  jscom dns update --domain mc.example.com. --ip 1.2.3.4
  jscom dns update --domain mc.example.com. --use-current-ip`,
	Args: cobra.NoArgs,
	RunE: runDNSUpdate,
}

func init() {
	rootCmd.AddCommand(dnsCmd)
	dnsCmd.AddCommand(dnsUpdateCmd)

	dnsUpdateCmd.Flags().StringVar(&dnsUpdateDomain, "domain", "",
		"Domain name to update (include the trailing dot, e.g. 'mc.example.com.')")
	_ = dnsUpdateCmd.MarkFlagRequired("domain")
	dnsUpdateCmd.Flags().StringVar(&dnsUpdateIP, "ip", "", "IP address to set")
	dnsUpdateCmd.Flags().BoolVar(&dnsUpdateUseCurrentIP, "use-current-ip", false,
		"Fetch and use the current public IP")
}

// validateDNSUpdateFlags enforces the --ip / --use-current-ip state
// machine. It runs before any network call: exactly one of the two
// must be supplied.
func validateDNSUpdateFlags(ip string, useCurrentIP bool) error {
	if ip != "" && useCurrentIP {
		return errors.New("--ip and --use-current-ip are mutually exclusive; provide one or the other")
	}
	if ip == "" && !useCurrentIP {
		return errors.New("one of --ip or --use-current-ip must be provided")
	}
	return nil
}

func runDNSUpdate(cmd *cobra.Command, args []string) error {
	if err := validateDNSUpdateFlags(dnsUpdateIP, dnsUpdateUseCurrentIP); err != nil {
		style.PrintError("%v", err)
		return SilentExit(exitcode.ErrGeneral)
	}

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

	targetIP := dnsUpdateIP
	if dnsUpdateUseCurrentIP {
		fmt.Println(style.Dim.Render("Fetching current public IP..."))
		result, err := client.MyIP()
		if err != nil {
			return SilentExit(renderAPIError(err))
		}
		targetIP = result.IP
		fmt.Printf("%s %s\n", style.Dim.Render("Current IP:"), targetIP)
	}

	if targetIP == "" {
		style.PrintError("no IP address available")
		return SilentExit(exitcode.ErrGeneral)
	}

	fmt.Println(style.Dim.Render(fmt.Sprintf("Updating DNS record for %s...", dnsUpdateDomain)))
	result, err := client.UpdateDNS(dnsUpdateDomain, targetIP)
	if err != nil {
		return SilentExit(renderAPIError(err))
	}

	style.PrintSuccess("%s", result.Message)
	printChangeInfo(result.ChangeInfo)
	return nil
}
