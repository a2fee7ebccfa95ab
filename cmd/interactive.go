package cmd

import (
	"classctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to search by room, pick a day and hour, and see the matching classes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(env)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
