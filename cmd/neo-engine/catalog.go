package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load the catalog and print its statistics",
	Long: `Catalog loads the configured CSV file, validating every record, and
reports the number of objects, orbit paths, hazardous objects and the span
of close-approach dates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		stats := c.Stats()

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling stats: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Catalog:     %s\n", appConfig.Catalog.Path)
		fmt.Fprintf(out, "Objects:     %d\n", stats.Objects)
		fmt.Fprintf(out, "Orbit paths: %d\n", stats.Orbits)
		fmt.Fprintf(out, "Hazardous:   %d\n", stats.Hazardous)
		fmt.Fprintf(out, "Dates:       %d", stats.Dates)
		if stats.Dates > 0 {
			fmt.Fprintf(out, " (%s to %s)", stats.FirstDate, stats.LastDate)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("json", false, "output statistics as JSON")

	rootCmd.AddCommand(catalogCmd)
}
