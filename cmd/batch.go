package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"autoviz/internal/connector"
	"autoviz/internal/system"
)

var (
	batOutputDir  string
	batVizType    string
	batSourceType string
)

var batchCmd = &cobra.Command{
	Use:   "batch <sources...>",
	Short: "Generate visualizations for many sources",
	Long: `Batch runs the autonomous pipeline over every source. File arguments
may be glob patterns. A failing source is reported and skipped; it never
aborts the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := expandSources(args)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			return fmt.Errorf("no sources matched")
		}

		opts := system.GenerateOptions{
			VizType:    batVizType,
			SourceType: connector.SourceType(batSourceType),
		}
		sys := system.New(cfg, verbose())
		results, err := sys.Batch(sources, batOutputDir, opts)
		if err != nil {
			return err
		}

		ok := 0
		for _, r := range results {
			if r.Err == nil {
				ok++
			}
		}
		fmt.Printf("\n✓ Completed %d/%d sources\n", ok, len(results))
		if ok < len(results) {
			return fmt.Errorf("%d source(s) failed", len(results)-ok)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batOutputDir, "output-dir", "o", "", "directory for generated files (default <output_dir>/batch)")
	batchCmd.Flags().StringVarP(&batVizType, "type", "t", "", "preferred visualization type for every source")
	batchCmd.Flags().StringVar(&batSourceType, "source-type", "", "force connector for every source: csv, json, excel, api, sql")
	rootCmd.AddCommand(batchCmd)
}

// expandSources expands glob patterns in file arguments and deduplicates the
// result. Non-file sources (URLs, SQL, inline JSON) pass through untouched.
func expandSources(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, arg := range args {
		// URLs and inline JSON pass through; ? and [ are legal there.
		if strings.Contains(arg, "://") || strings.HasPrefix(arg, "[") || strings.HasPrefix(arg, "{") ||
			!strings.ContainsAny(arg, "*?[") {
			if !seen[arg] {
				seen[arg] = true
				out = append(out, arg)
			}
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}
