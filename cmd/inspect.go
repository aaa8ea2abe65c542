package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabled/internal/engine"
	"github.com/KaramelBytes/tabled/internal/ingest"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print summary statistics for a local CSV/TSV/JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := ingest.DecodeFile(args[0])
		if err != nil {
			return err
		}
		stats, nulls := engine.Statistics(ds)
		kinds := ds.Kinds()

		var b strings.Builder
		fmt.Fprintf(&b, "Dataset: %s\n", ds.Name)
		fmt.Fprintf(&b, "Rows: %d\n", len(ds.Rows))
		fmt.Fprintf(&b, "Columns: %d\n\n", len(ds.Columns))
		for _, col := range ds.Columns {
			s := stats[col]
			fmt.Fprintf(&b, "- %s: %s (non-null %d, null %d)", col, kinds[col], s.Count, nulls[col])
			if s.Mean != nil {
				fmt.Fprintf(&b, " — mean %.4g, min %.4g, max %.4g", *s.Mean, *s.Min, *s.Max)
			}
			b.WriteString("\n")
		}
		fmt.Print(b.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
