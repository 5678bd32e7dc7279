// main is the entry point for the citescope CLI.
package main

import (
	"os"

	"github.com/huangsam/citescope/cmd"
	"github.com/huangsam/citescope/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
