package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version string, overridable at build time:
//
//	go build -ldflags "-X github.com/johnsosoka/jscom-cli/internal/cmd.Version=1.2.3"
var Version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jscom version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
