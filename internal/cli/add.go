package cli

import (
	"fmt"
	"strings"

	"github.com/pablasso/gitdo/internal/task"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	s := projectStore()
	tasks, err := loadTasks(s)
	if err != nil {
		return err
	}

	t, err := task.New(strings.Join(args, " "))
	if err != nil {
		return err
	}

	tasks = append(tasks, t)
	if err := s.Save(tasks); err != nil {
		return err
	}

	fmt.Println(checkmark(), "Added task:", t.Title)
	fmt.Println(subtleStyle.Render("ID: " + t.ShortID()))
	return nil
}
