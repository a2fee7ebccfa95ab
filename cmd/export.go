package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"classctl/pkg/exporter"
	"classctl/pkg/schedule"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sections to an ICS calendar file",
	Long:  `Write the meetings of the selected sections for the coming weeks to an .ics file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		room, _ := cmd.Flags().GetString("room")
		course, _ := cmd.Flags().GetString("course")
		output, _ := cmd.Flags().GetString("output")
		weeks, _ := cmd.Flags().GetInt("weeks")
		fromStr, _ := cmd.Flags().GetString("from")

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		from := env.Clock()
		if fromStr != "" {
			parsed, err := time.ParseInLocation("2006-01-02", fromStr, env.Location)
			if err != nil {
				return fmt.Errorf("invalid --from date, expected YYYY-MM-DD: %w", err)
			}
			from = parsed
		}

		sections := schedule.FilterByRoom(env.Schedule.Sections(), room)
		if course != "" {
			sections = filterByCourse(sections, course)
		}
		if len(sections) == 0 {
			return fmt.Errorf("no sections match room %q and course %q", room, course)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting %d sections to %s...", len(sections), output)).
			Action(func() {
				err = exporter.GenerateICS(sections, from, weeks, file)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		logger.Info("calendar exported", zap.String("output", output), zap.Int("sections", len(sections)), zap.Int("weeks", weeks))
		fmt.Printf("Successfully exported %d sections over %d weeks to %s\n", len(sections), weeks, output)
		return nil
	},
}

// filterByCourse keeps the sections whose course code starts with prefix, ignoring spaces.
func filterByCourse(sections []schedule.Section, prefix string) []schedule.Section {
	norm := func(s string) string { return strings.ReplaceAll(s, " ", "") }
	var out []schedule.Section
	for _, s := range sections {
		if strings.HasPrefix(norm(s.CourseCode), norm(prefix)) {
			out = append(out, s)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("room", "r", "", "Only rooms containing this text")
	exportCmd.Flags().StringP("course", "c", "", "Only course codes starting with this (e.g. \"PHY F4\")")
	exportCmd.Flags().StringP("output", "o", "timetable.ics", "Output file path")
	exportCmd.Flags().IntP("weeks", "w", 1, "Number of weeks to export")
	exportCmd.Flags().String("from", "", "First day to export (YYYY-MM-DD), defaults to today")
}
