package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pablasso/gitdo/internal/task"
	"github.com/spf13/cobra"
)

var (
	listStatus string
	listAll    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  "Lists pending and in-progress tasks by default. Use --all for every task or --status for one status.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (pending, inprogress, completed)")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show all tasks regardless of status")
}

func runList(cmd *cobra.Command, args []string) error {
	status := strings.ToLower(listStatus)
	if status != "" && !task.ValidStatus(status) {
		return fmt.Errorf("invalid status %q (valid: pending, inprogress, completed)", listStatus)
	}

	s := projectStore()
	tasks, err := loadTasks(s)
	if err != nil {
		return err
	}

	filtered := task.Filter(tasks, task.FilterSpec{Status: status, All: listAll})
	if len(filtered) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTASK\tSTATUS\tCREATED")
	for i := range filtered {
		t := &filtered[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			subtleStyle.Render(t.ShortID()),
			t.Title,
			renderStatus(t.Status),
			t.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}
