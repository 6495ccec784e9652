package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var citiesTitle bool

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the cities known to the route service",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.controller.LoadCatalog(cmd.Context()); err != nil {
			return err
		}

		caser := cases.Title(language.Russian)
		for _, c := range app.controller.Snapshot().Catalog {
			name := string(c)
			if citiesTitle {
				name = caser.String(name)
			}
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
	citiesCmd.Flags().BoolVar(&citiesTitle, "title", false, "Title-case city names for display")
}
