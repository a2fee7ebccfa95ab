package cmd

import (
	"fmt"
	"os"

	"classctl/pkg/importer"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert a saved timetable HTML page into a dataset file",
	Long: `Read a timetable table from a locally saved HTML page and write it as a
course-keyed JSON dataset that can be used with --dataset.`,
	Annotations: map[string]string{skipSchedule: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("html")
		output, _ := cmd.Flags().GetString("output")

		in, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("failed to open HTML file: %w", err)
		}
		defer in.Close()

		var rows []importer.Row
		_ = spinner.New().
			Title(fmt.Sprintf("Reading timetable from %s...", input)).
			Action(func() {
				rows, err = importer.ParseHTML(in)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to parse timetable: %w", err)
		}
		if len(rows) == 0 {
			return fmt.Errorf("no sections found in %s", input)
		}

		courses := importer.BuildCatalog(rows)

		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()

		if err := importer.WriteJSON(courses, out); err != nil {
			return fmt.Errorf("failed to write dataset: %w", err)
		}

		logger.Info("timetable imported", zap.String("input", input), zap.Int("courses", len(courses)), zap.Int("sections", len(rows)))
		fmt.Printf("Successfully imported %d sections of %d courses to %s\n", len(rows), len(courses), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().String("html", "", "Saved timetable HTML page")
	importCmd.Flags().StringP("output", "o", "schedule.json", "Output dataset path")
	importCmd.MarkFlagRequired("html")
}
