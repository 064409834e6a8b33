package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pablasso/gitdo/internal/store"
	"github.com/spf13/cobra"
)

var deinitForce bool

var deinitCmd = &cobra.Command{
	Use:   "deinit",
	Short: "Remove gitdo from the current directory",
	Long:  "Removes the .gitdo/ folder and all tasks. This action cannot be undone.",
	Args:  cobra.NoArgs,
	RunE:  runDeinit,
}

func init() {
	deinitCmd.Flags().BoolVarP(&deinitForce, "force", "f", false, "Skip confirmation prompt")
}

func runDeinit(cmd *cobra.Command, args []string) error {
	info, err := os.Stat(store.DirName)
	if os.IsNotExist(err) {
		return fmt.Errorf("gitdo is not initialized in this directory")
	}
	if err != nil {
		return fmt.Errorf("failed to check %s directory: %w", store.DirName, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", store.DirName)
	}

	if !deinitForce {
		fmt.Printf("Remove %s/ and all tasks? This cannot be undone. [y/N]: ", store.DirName)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.RemoveAll(store.DirName); err != nil {
		return fmt.Errorf("failed to remove %s: %w", store.DirName, err)
	}

	fmt.Println(checkmark(), "Removed", store.DirName)
	return nil
}
