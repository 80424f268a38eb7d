package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/neo-engine/internal/engine"
	"github.com/pdiddy/neo-engine/internal/query"
	"github.com/pdiddy/neo-engine/internal/writer"
	"github.com/pdiddy/neo-engine/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print one object and all of its orbit paths",
	Long: `Show looks up an object by its exact, case-sensitive name and prints its
attributes followed by every recorded close approach in load order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		neo, ok := c.EntityByName(args[0])
		if !ok {
			return fmt.Errorf("object %q not found in %s", args[0], appConfig.Catalog.Path)
		}

		out := cmd.OutOrStdout()
		w := &writer.Writer{Out: out}
		if err := w.Write(cmd.Context(), string(writer.Display), engine.Result{
			Kind: query.KindNEO,
			NEOs: []*types.NearEarthObject{neo},
		}); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return w.Write(cmd.Context(), string(writer.Display), engine.Result{
			Kind:  query.KindPath,
			Paths: neo.Orbits(),
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
