package cmd

import (
	"algoway/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to pick cities, a sort order and filters, and browse the found routes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		return tui.RunTUI(cmd.Context(), app.controller)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
