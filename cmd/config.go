package cmd

import (
	"fmt"
	"strings"

	"algoway/pkg/config"
	"algoway/pkg/route"
	"algoway/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage algoway configuration",
	Long:  "View or edit your local configuration settings (route service address, default sort, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		baseURL, _ := cmd.Flags().GetString("set-base-url")
		accent, _ := cmd.Flags().GetString("set-accent")
		sortBy, _ := cmd.Flags().GetString("set-sort")

		if baseURL == "" && accent == "" && sortBy == "" {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if baseURL != "" {
			cfg.BaseURL = strings.TrimRight(baseURL, "/")
		}
		if accent != "" {
			cfg.AccentColor = accent
		}
		if sortBy != "" {
			s, err := route.ParseSortCriterion(sortBy)
			if err != nil {
				return err
			}
			cfg.DefaultSort = string(s)
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println("✅ Configuration saved.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-base-url", "", "Set the route service address (e.g. http://127.0.0.1:8000)")
	configCmd.Flags().String("set-accent", "", "Set the TUI accent color (ANSI code or #RRGGBB)")
	configCmd.Flags().String("set-sort", "", "Set the default sort: fastest, comfort or cheapest")
}
