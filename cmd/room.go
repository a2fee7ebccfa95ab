package cmd

import (
	"fmt"

	"classctl/pkg/schedule"
	"classctl/pkg/tui"

	"github.com/spf13/cobra"
)

var roomCmd = &cobra.Command{
	Use:   "room [query]",
	Short: "List every section whose room contains the query",
	Long: `Search the whole timetable by room. The match is a case-sensitive substring,
so "07" finds 6107 and A107. Without a query every section is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		results := schedule.FilterByRoom(env.Schedule.Sections(), query)

		title := "All Classes"
		if query != "" {
			title = fmt.Sprintf("Classes in rooms matching %q", query)
		}
		fmt.Print(tui.RenderSections(title, results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roomCmd)
}
