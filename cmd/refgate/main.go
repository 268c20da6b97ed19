package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "refgate",
	Short: "Server-side push gatekeeper for non-ASCII file names",
	Long: `refgate is installed as a pre-receive hook. It reads the proposed
ref updates from stdin and rejects the push when a changed file name
contains encoded non-ASCII bytes, unless hooks.allownonascii is set.`,
	Args:         cobra.NoArgs,
	RunE:         runGate,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
