package main

import (
	"fmt"

	"github.com/codimo/refgate/internal/scan"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Audit a worktree for non-ASCII file names",
	Long: `Scan walks a worktree and lists every file or directory name the
push gate would reject, so existing repositories can be cleaned up
before the hook is enabled. Exits non-zero if any name is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		offenders, err := scan.Worktree(root)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if len(offenders) == 0 {
			fmt.Println("No non-ASCII file names found.")
			return nil
		}

		for _, path := range offenders {
			fmt.Println(path)
		}
		return fmt.Errorf("%d non-ASCII file name(s) found", len(offenders))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
