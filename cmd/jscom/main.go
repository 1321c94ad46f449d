// jscom is the command-line client for the jscom-mini-services API.
package main

import (
	"os"

	"github.com/johnsosoka/jscom-cli/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
