package cli

import (
	"errors"
	"fmt"

	"github.com/pablasso/gitdo/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize gitdo in the current directory",
	Long:  "Creates a .gitdo/ folder with an empty task store.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	s := projectStore()

	if err := s.Init(); err != nil {
		if errors.Is(err, store.ErrAlreadyInitialized) {
			return fmt.Errorf("gitdo is already initialized in this directory")
		}
		return err
	}

	fmt.Println(checkmark(), "Initialized gitdo in", store.DirName)
	fmt.Println(subtleStyle.Render("Add your first task with: gitdo add <title>"))
	return nil
}
