package cli

import (
	"fmt"

	"github.com/pablasso/gitdo/internal/task"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id-prefix>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	s := projectStore()
	tasks, err := loadTasks(s)
	if err != nil {
		return err
	}

	idx, err := task.Resolve(tasks, args[0])
	if err != nil {
		return err
	}

	removed := tasks[idx]
	tasks = append(tasks[:idx], tasks[idx+1:]...)

	if err := s.Save(tasks); err != nil {
		return err
	}

	fmt.Println(checkmark(), "Removed task:", removed.Title)
	return nil
}
