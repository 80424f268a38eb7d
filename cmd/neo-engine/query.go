package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/neo-engine/internal/catalog"
	"github.com/pdiddy/neo-engine/internal/engine"
	"github.com/pdiddy/neo-engine/internal/query"
	"github.com/pdiddy/neo-engine/internal/writer"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Find objects that approached Earth on a date or within a date range",
	Long: `Query loads the catalog and returns the objects with a close approach on
--date, or on any day from --start-date through --end-date. Filters of the
form option:operator:value narrow the result; they are applied in order and
all must hold. Results are deduplicated and limited to --number entries.

Filter options: ` + filterOptionNames() + `
Operators: >, >=, =, <, <=

Orbit-path options (distance, velocity) match an object when at least one
of its approaches satisfies the comparison.`,
	Example: `  neo-engine query --date 2020-01-01 --number 5
  neo-engine query --start-date 2020-01-01 --end-date 2020-01-31 --filter distance:<:1000000 --filter is_hazardous:=:true
  neo-engine query --date 2020-01-01 --return-object Path --output csv_file --output-path paths.csv
  neo-engine query --load saved.yaml`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("date", "", "exact close-approach date (YYYY-MM-DD)")
	queryCmd.Flags().String("start-date", "", "range start date, inclusive (YYYY-MM-DD)")
	queryCmd.Flags().String("end-date", "", "range end date, inclusive (YYYY-MM-DD)")
	queryCmd.Flags().IntP("number", "n", 0, "maximum number of results (default from config, 10)")
	queryCmd.Flags().StringArrayP("filter", "f", nil, "filter option:operator:value (repeatable)")
	queryCmd.Flags().String("return-object", "", "NEO or Path (default from config, NEO)")
	queryCmd.Flags().String("output", "", "output format: "+formatNames()+" (default from config, display)")
	queryCmd.Flags().String("output-path", "", "target file for file output formats")
	queryCmd.Flags().String("save", "", "save the query and a result summary to a .yaml or .toml file")
	queryCmd.Flags().String("load", "", "run a query saved with --save; other query flags override it")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	opts, err := queryOptions(cmd)
	if err != nil {
		return err
	}

	spec, err := query.Compile(opts)
	if err != nil {
		return err
	}

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := engine.Execute(c, spec)
	if err != nil {
		return err
	}
	logger.Debug("query executed",
		"candidates", res.Candidates,
		"duplicates_removed", res.DupsRemoved,
		"results", res.Len(),
		"elapsed", time.Since(start))

	format := appConfig.Output.Format
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		format = v
	}
	path := appConfig.Output.Path
	if v, _ := cmd.Flags().GetString("output-path"); v != "" {
		path = v
	}

	w := &writer.Writer{Out: cmd.OutOrStdout(), Path: path}
	if err := w.Write(cmd.Context(), format, res); err != nil {
		return err
	}
	if format != string(writer.Display) {
		fmt.Fprintf(os.Stderr, "Wrote %d results to %s\n", res.Len(), path)
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		summary := query.Summary{
			Total:             res.Len(),
			Candidates:        res.Candidates,
			DuplicatesRemoved: res.DupsRemoved,
			Results:           res.Names(),
		}
		if err := query.WriteFile(savePath, opts, summary); err != nil {
			return fmt.Errorf("saving query: %w", err)
		}
		logger.Info("query saved", "path", savePath)
	}
	return nil
}

// queryOptions builds query options from a saved query file (if any), the
// configured defaults and the flags that were set explicitly.
func queryOptions(cmd *cobra.Command) (query.Options, error) {
	opts := query.Options{
		Number:       appConfig.Query.Number,
		ReturnObject: appConfig.Query.ReturnObject,
	}

	if loadPath, _ := cmd.Flags().GetString("load"); loadPath != "" {
		f, err := query.ReadFile(loadPath)
		if err != nil {
			return query.Options{}, err
		}
		opts = f.Query
		logger.Debug("loaded saved query", "path", loadPath, "saved_results", f.Summary.Total)
	}

	flags := cmd.Flags()
	if flags.Changed("date") || flags.Changed("start-date") || flags.Changed("end-date") {
		opts.Date, _ = flags.GetString("date")
		opts.StartDate, _ = flags.GetString("start-date")
		opts.EndDate, _ = flags.GetString("end-date")
	}
	if flags.Changed("number") {
		opts.Number, _ = flags.GetInt("number")
	}
	if flags.Changed("filter") {
		opts.Filters, _ = flags.GetStringArray("filter")
	}
	if flags.Changed("return-object") {
		opts.ReturnObject, _ = flags.GetString("return-object")
	}
	return opts, nil
}

// loadCatalog reads the configured catalog, local or remote, and logs its size.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	src := catalog.Source{
		Path:    appConfig.Catalog.Path,
		Timeout: appConfig.Catalog.Timeout,
		Retries: appConfig.Catalog.Retries,
	}
	start := time.Now()
	c, err := catalog.Open(ctx, src)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded",
		"path", src.Path,
		"remote", src.Remote(),
		"objects", c.Len(),
		"elapsed", time.Since(start))
	return c, nil
}

func filterOptionNames() string {
	var names []string
	for _, o := range query.SupportedOptions() {
		names = append(names, o.Name)
	}
	return strings.Join(names, ", ")
}

func formatNames() string {
	names := make([]string, len(writer.Formats))
	for i, f := range writer.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
