package cli

import (
	"fmt"

	"github.com/pablasso/gitdo/internal/task"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id-prefix>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	s := projectStore()
	tasks, err := loadTasks(s)
	if err != nil {
		return err
	}

	idx, err := task.Resolve(tasks, args[0])
	if err != nil {
		return err
	}

	t := &tasks[idx]
	changed, err := t.Complete()
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Task %s is already completed.", t.ShortID())))
		return nil
	}

	if err := s.Save(tasks); err != nil {
		return err
	}

	fmt.Println(checkmark(), "Completed task:", t.Title)
	return nil
}
