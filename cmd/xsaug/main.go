// Command xsaug augments tabulated cross sections by exponential fitting and
// extrapolation, as described by a YAML batch file.
package main

import (
	"os"

	"github.com/katalvlaran/xsaug/cmd/xsaug/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
