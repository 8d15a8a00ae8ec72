package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"autoviz/internal/connector"
	"autoviz/internal/insight"
	"autoviz/internal/render"
	"autoviz/internal/system"
)

var (
	genVizType     string
	genOutput      string
	genTitle       string
	genReport      string
	genNoAnalytics bool
	genSourceType  string
	genDelimiter   string
	genDataPath    string
	genSheet       string
	genX           string
	genY           string
	genZ           string
	genColor       string
)

var generateCmd = &cobra.Command{
	Use:   "generate <source>",
	Short: "Run the full autonomous pipeline: load, decide, render, analyze",
	Long: `Generate loads a source, autonomously decides the best visualization
(or honors --type when it is a ranked candidate), renders an interactive HTML
page, and runs the insight engine over the data. Use --report to export the
full analytics report as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := system.GenerateOptions{
			VizType:       genVizType,
			SourceType:    connector.SourceType(genSourceType),
			Title:         genTitle,
			OutputPath:    genOutput,
			ReportPath:    genReport,
			SkipAnalytics: genNoAnalytics,
			DataPath:      genDataPath,
			SheetName:     genSheet,
			Bindings: render.Bindings{
				X: genX, Y: genY, Z: genZ, Color: genColor,
			},
		}
		if genDelimiter != "" {
			opts.Delimiter = rune(genDelimiter[0])
		}

		sys := system.New(cfg, verbose())
		res, err := sys.Generate(args[0], opts)
		if err != nil {
			return err
		}

		if res.Report != nil && verbose() {
			printReportHighlights(res.Report)
		}
		if !verbose() {
			fmt.Println(res.OutputPath)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genVizType, "type", "t", "", "preferred visualization type (used when it is a ranked candidate)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output HTML path (default <output_dir>/autonomous_<type>.html)")
	generateCmd.Flags().StringVar(&genTitle, "title", "", "visualization title")
	generateCmd.Flags().StringVar(&genReport, "report", "", "export the analytics report as JSON to this path")
	generateCmd.Flags().BoolVar(&genNoAnalytics, "no-analytics", false, "skip the insight engine")
	generateCmd.Flags().StringVar(&genSourceType, "source-type", "", "force connector: csv, json, excel, api, sql")
	generateCmd.Flags().StringVar(&genDelimiter, "delimiter", "", "CSV delimiter (default auto-detected)")
	generateCmd.Flags().StringVar(&genDataPath, "data-path", "", "dotted path to the record list inside an API response")
	generateCmd.Flags().StringVar(&genSheet, "sheet", "", "worksheet name for Excel sources (default first sheet)")
	generateCmd.Flags().StringVar(&genX, "x", "", "column for the X axis")
	generateCmd.Flags().StringVar(&genY, "y", "", "column for the Y axis")
	generateCmd.Flags().StringVar(&genZ, "z", "", "column for the Z axis")
	generateCmd.Flags().StringVar(&genColor, "color", "", "column for color grouping")
	rootCmd.AddCommand(generateCmd)
}

func printReportHighlights(rep *insight.Report) {
	fmt.Printf("\n%s\n", rep.Summary)
	if len(rep.KeyFindings) > 0 {
		fmt.Println("\nKey findings:")
		for _, f := range rep.KeyFindings {
			fmt.Printf("  • %s\n", f)
		}
	}
	if len(rep.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, r := range rep.Recommendations {
			fmt.Printf("  • %s\n", r)
		}
	}
}
