package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"autoviz/internal/connector"
	"autoviz/internal/system"
)

var sugSourceType string

var suggestCmd = &cobra.Command{
	Use:   "suggest <source>",
	Short: "Rank visualization candidates for a source",
	Long: `Suggest profiles a source and prints the ranked visualization
candidates with their confidence scores, highest first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys := system.New(cfg, verbose())
		suggestions, err := sys.Suggest(args[0], connector.SourceType(sugSourceType))
		if err != nil {
			return err
		}
		for i, s := range suggestions {
			marker := " "
			if i == 0 {
				marker = "→"
			}
			fmt.Printf("%s %-16s %.0f%%\n", marker, s.Type, s.Confidence*100)
		}
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVar(&sugSourceType, "source-type", "", "force connector: csv, json, excel, api, sql")
	rootCmd.AddCommand(suggestCmd)
}
