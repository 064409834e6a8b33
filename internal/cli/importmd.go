package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pablasso/gitdo/internal/importer"
	"github.com/spf13/cobra"
)

var (
	importSkipDuplicates bool
	importDryRun         bool
)

var importCmd = &cobra.Command{
	Use:   "import-md <file>",
	Short: "Import tasks from a markdown checklist",
	Long: `Imports checklist items from a markdown file.

Recognized lines use "- [ ]" (or "* [ ]") for a pending item and
"- [x]" for a completed one. Other lines are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importSkipDuplicates, "skip-duplicates", false, "Skip items whose title matches an existing task")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Preview the import without saving anything")
}

func runImport(cmd *cobra.Command, args []string) error {
	s := projectStore()
	tasks, err := loadTasks(s)
	if err != nil {
		return err
	}

	res, err := importer.Import(args[0], tasks, importer.Options{
		SkipDuplicates: importSkipDuplicates,
		DryRun:         importDryRun,
	})
	if err != nil {
		return err
	}

	if res.Parsed == 0 {
		fmt.Printf("No checklist items found in %s\n", args[0])
		return nil
	}

	fmt.Printf("Found %d checklist item(s) in %s:\n", res.Parsed, args[0])
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tSTATUS")
	for i := range res.Tasks {
		fmt.Fprintf(w, "%s\t%s\n", res.Tasks[i].Title, renderStatus(res.Tasks[i].Status))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if importDryRun {
		fmt.Printf("Would import %d task(s), skip %d duplicate(s).\n", res.Imported, res.Skipped)
		fmt.Println(subtleStyle.Render("Dry run - no tasks were imported"))
		return nil
	}

	tasks = append(tasks, res.Tasks...)
	if err := s.Save(tasks); err != nil {
		return err
	}

	fmt.Println(checkmark(), fmt.Sprintf("Imported %d task(s)", res.Imported))
	if res.Skipped > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Skipped %d duplicate(s)", res.Skipped)))
	}
	return nil
}
