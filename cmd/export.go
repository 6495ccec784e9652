package cmd

import (
	"context"
	"errors"
	"fmt"

	"algoway/pkg/present"
	"algoway/pkg/query"
	"algoway/pkg/route"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var (
	exportOpts   searchFlags
	exportDepart string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export the best route to an ICS file",
	Long:  `Search routes between two cities and write the first result to an .ics calendar, one event per leg.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		depart, err := parseDepart(exportDepart)
		if err != nil {
			return err
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := exportOpts.apply(app.controller); err != nil {
			return err
		}

		var searchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Поиск маршрута %s → %s...", exportOpts.from, exportOpts.to)).
			Action(func() {
				_, searchErr = app.controller.SearchAndWait(cmd.Context())
			}).
			Run()

		best, err := bestRoute(cmd.Context(), app.controller.Snapshot(), searchErr)
		if err != nil {
			return err
		}
		if err := writeICS(exportOutput, best, depart); err != nil {
			return err
		}

		fmt.Printf("Successfully exported %s to %s\n", present.JoinPath(best.Path), exportOutput)
		return nil
	},
}

// bestRoute picks route #1 once the search has settled. The spinner can return
// early on interrupt, so an empty result is possible even without an error.
func bestRoute(ctx context.Context, s query.State, searchErr error) (route.Route, error) {
	if searchErr != nil {
		return route.Route{}, errors.New(present.Message(searchErr))
	}
	if err := ctx.Err(); err != nil {
		return route.Route{}, err
	}
	if len(s.Results) == 0 {
		return route.Route{}, errors.New(present.Message(query.ErrNoRoutes))
	}
	return s.Results[0], nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportOpts.register(exportCmd)
	exportCmd.Flags().StringVar(&exportDepart, "depart", "", "Departure time, RFC 3339 (default now)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "route.ics", "Output file path")
	exportCmd.MarkFlagRequired("from")
	exportCmd.MarkFlagRequired("to")
}
