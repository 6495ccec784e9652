package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"algoway/pkg/config"
	"algoway/pkg/tui"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "algoway",
	Short: "A CLI and TUI for finding routes between cities",
	Long: `algoway asks the route service for the fastest, most comfortable or
cheapest way between two cities and shows the result with a per-leg breakdown.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath != "" {
			config.SetPath(configPath)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		return tui.RunTUI(cmd.Context(), app.controller)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.algoway.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and state changes to stderr")
}
