package cli

import (
	"github.com/pablasso/gitdo/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "gitdo",
	Short:        "Plan your work from the command line",
	Long:         `GitDo tracks project tasks in a hidden .gitdo/ folder inside your working tree. Initialize once, then add, list, start, complete and remove tasks by any unique prefix of their ID.`,
	Version:      version.Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(deinitCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(importCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
