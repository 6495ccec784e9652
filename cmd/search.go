package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"algoway/pkg/exporter"
	"algoway/pkg/present"
	"algoway/pkg/query"
	"algoway/pkg/route"

	"github.com/spf13/cobra"
)

// searchFlags are shared by the search and export commands
type searchFlags struct {
	from, to   string
	sort       string
	maxPrice   string
	minComfort string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.from, "from", "f", "", "Departure city")
	cmd.Flags().StringVarP(&f.to, "to", "t", "", "Destination city")
	cmd.Flags().StringVarP(&f.sort, "sort", "s", "", "Criterion: fastest, comfort or cheapest (default from config)")
	cmd.Flags().StringVar(&f.maxPrice, "max-price", "", "Only routes up to this total cost")
	cmd.Flags().StringVar(&f.minComfort, "min-comfort", "", "Only routes with at least this comfort (0-100)")
}

// apply moves the flag values into the controller
func (f *searchFlags) apply(ctl *query.Controller) error {
	if f.from != "" {
		c := route.City(f.from)
		if err := ctl.SelectCity(query.Origin, &c); err != nil {
			return err
		}
	}
	if f.to != "" {
		c := route.City(f.to)
		if err := ctl.SelectCity(query.Destination, &c); err != nil {
			return err
		}
	}
	if f.sort != "" {
		s, err := route.ParseSortCriterion(f.sort)
		if err != nil {
			return err
		}
		ctl.SetSortCriterion(s)
	}
	if !ctl.SetFilter(query.MaxPrice, f.maxPrice) {
		return fmt.Errorf("--max-price must contain digits only, got %q", f.maxPrice)
	}
	if !ctl.SetFilter(query.MinComfort, f.minComfort) {
		return fmt.Errorf("--min-comfort must contain digits only, got %q", f.minComfort)
	}
	return nil
}

var (
	searchOpts   searchFlags
	searchExport string
	searchDepart string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search routes between two cities",
	Long:  `Run one search against the route service and print the results with a per-leg breakdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		depart, err := parseDepart(searchDepart)
		if err != nil {
			return err
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := searchOpts.apply(app.controller); err != nil {
			return err
		}

		state, err := app.controller.SearchAndWait(cmd.Context())
		if err != nil {
			var vErr *query.ValidationError
			if errors.As(err, &vErr) || errors.Is(err, query.ErrNoRoutes) {
				fmt.Println(present.Message(err))
				return nil
			}
			return err
		}

		if err := present.Render(os.Stdout, state.Results); err != nil {
			return err
		}

		if searchExport == "" {
			return nil
		}
		if err := writeICS(searchExport, state.Results[0], depart); err != nil {
			return err
		}
		fmt.Printf("Маршрут #1 сохранён в %s\n", searchExport)
		return nil
	},
}

// parseDepart reads an RFC 3339 time; empty means now
func parseDepart(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--depart must be RFC 3339 (e.g. 2026-03-04T10:00:00+03:00): %w", err)
	}
	return t, nil
}

func writeICS(path string, r route.Route, depart time.Time) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(r, depart, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchOpts.register(searchCmd)
	searchCmd.Flags().StringVarP(&searchExport, "export", "e", "", "Also write route #1 to this .ics file")
	searchCmd.Flags().StringVar(&searchDepart, "depart", "", "Departure time for --export, RFC 3339 (default now)")
}
