package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"autoviz/internal/connector"
	"autoviz/internal/profile"
	"autoviz/internal/system"
	"autoviz/internal/utils"
)

var (
	anaSourceType string
	anaJSONOut    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <source>",
	Short: "Profile a data source without rendering anything",
	Long: `Analyze loads a source (CSV/JSON file, URL, SQL table, or inline JSON),
classifies its columns, detects structural patterns, computes statistics and
correlations, and prints the resulting profile.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys := system.New(cfg, verbose())
		p, err := sys.Analyze(args[0], connector.SourceType(anaSourceType))
		if err != nil {
			return err
		}

		if anaJSONOut != "" {
			b, err := utils.PrettyJSON(p)
			if err != nil {
				return err
			}
			if err := utils.SafeWriteFile(anaJSONOut, b); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote profile to %s\n", anaJSONOut)
			return nil
		}

		printProfile(p)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&anaSourceType, "source-type", "", "force connector: csv, json, excel, api, sql")
	analyzeCmd.Flags().StringVar(&anaJSONOut, "json", "", "write the full profile as JSON to this path instead of printing")
	rootCmd.AddCommand(analyzeCmd)
}

func printProfile(p *profile.DataProfile) {
	fmt.Printf("Dataset: %d rows × %d columns\n\n", p.RowCount, p.ColumnCount)

	fmt.Println("Columns:")
	for _, name := range p.ColumnNames {
		fmt.Printf("  %-24s %s\n", name, p.ColumnTypes[name])
	}

	var flags []string
	if p.HasTemporal {
		flags = append(flags, "temporal")
	}
	if p.HasNetwork {
		flags = append(flags, "network")
	}
	if p.HasCategorical {
		flags = append(flags, "categorical")
	}
	if p.HasNumeric {
		flags = append(flags, "numeric")
	}
	if len(flags) > 0 {
		fmt.Printf("\nStructure: %s\n", strings.Join(flags, ", "))
	}

	if len(p.Relationships) > 0 {
		fmt.Println("\nRelationships:")
		for _, r := range p.Relationships {
			fmt.Printf("  %s ↔ %s: %s\n", r.A, r.B, r.Kind)
		}
	}

	if n := len(p.Statistics.MissingValues); n > 0 {
		cols := make([]string, 0, n)
		for name := range p.Statistics.MissingValues {
			cols = append(cols, name)
		}
		sort.Strings(cols)
		fmt.Println("\nMissing values:")
		for _, name := range cols {
			fmt.Printf("  %-24s %d\n", name, p.Statistics.MissingValues[name])
		}
	}

	if len(p.SuggestedVisualizations) > 0 {
		fmt.Println("\nSuggested visualizations:")
		for _, viz := range p.SuggestedVisualizations {
			fmt.Printf("  %-16s %.0f%%\n", viz, p.ConfidenceScores[viz]*100)
		}
	}
}
