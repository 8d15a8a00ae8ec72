// Package system composes the pipeline: load a source, profile it, decide a
// visualization, render it, and run analytics. It owns all progress output;
// the engines underneath stay silent and pure.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"autoviz/internal/config"
	"autoviz/internal/connector"
	"autoviz/internal/dataset"
	"autoviz/internal/insight"
	"autoviz/internal/profile"
	"autoviz/internal/render"
	"autoviz/internal/utils"
)

// System is the orchestration facade over connectors, profiling, analytics,
// and rendering.
type System struct {
	cfg     *config.Global
	verbose bool
}

// New builds a System. A nil cfg falls back to defaults.
func New(cfg *config.Global, verbose bool) *System {
	if cfg == nil {
		cfg = &config.Global{OutputDir: "visualizations", MaxRows: 100000, HTTPTimeoutSec: 30}
	}
	return &System{cfg: cfg, verbose: verbose}
}

// GenerateOptions tunes one Generate run.
type GenerateOptions struct {
	// VizType overrides the autonomous choice when it is among the ranked
	// candidates.
	VizType string
	// SourceType forces a connector; empty auto-detects.
	SourceType connector.SourceType
	// Title overrides the generated page title.
	Title string
	// OutputPath overrides the HTML destination.
	OutputPath string
	// ReportPath, when set, exports the analytics report as JSON.
	ReportPath string
	// SkipAnalytics renders without running the insight engine.
	SkipAnalytics bool
	// Bindings pins columns to visual channels.
	Bindings render.Bindings
	// DataPath drills into API response envelopes.
	DataPath string
	// Delimiter forces the CSV delimiter.
	Delimiter rune
	// SheetName selects a worksheet for Excel sources.
	SheetName string
}

// GenerateResult reports what one Generate run produced.
type GenerateResult struct {
	VizType    string
	Profile    *profile.DataProfile
	Report     *insight.Report
	OutputPath string
}

func (s *System) connectorOptions(opts GenerateOptions) connector.Options {
	return connector.Options{
		MaxRows:     s.cfg.MaxRows,
		Delimiter:   opts.Delimiter,
		HTTPTimeout: time.Duration(s.cfg.HTTPTimeoutSec) * time.Second,
		DataPath:    opts.DataPath,
		PostgresDSN: s.cfg.PostgresDSN,
		SheetName:   opts.SheetName,
	}
}

func (s *System) load(source string, typ connector.SourceType, opts GenerateOptions) (*dataset.Table, error) {
	if typ == "" && s.cfg.DefaultSourceType != "" {
		typ = connector.SourceType(s.cfg.DefaultSourceType)
	}
	t, err := connector.Load(source, typ, s.connectorOptions(opts))
	if err != nil {
		return nil, err
	}
	if s.verbose {
		fmt.Printf("✓ Loaded %d rows × %d columns from %s\n", t.RowCount(), t.ColumnCount(), sourceLabel(source))
	}
	return t, nil
}

// Analyze loads and profiles a source without rendering anything.
func (s *System) Analyze(source string, typ connector.SourceType) (*profile.DataProfile, error) {
	t, err := s.load(source, typ, GenerateOptions{})
	if err != nil {
		return nil, err
	}
	return profile.Profile(t)
}

// Suggest returns the ranked visualization candidates for a source.
func (s *System) Suggest(source string, typ connector.SourceType) ([]profile.Suggestion, error) {
	p, err := s.Analyze(source, typ)
	if err != nil {
		return nil, err
	}
	out := make([]profile.Suggestion, 0, len(p.SuggestedVisualizations))
	for _, viz := range p.SuggestedVisualizations {
		out = append(out, profile.Suggestion{Type: viz, Confidence: p.ConfidenceScores[viz]})
	}
	return out, nil
}

// Generate runs the full autonomous pipeline for one source.
func (s *System) Generate(source string, opts GenerateOptions) (*GenerateResult, error) {
	t, err := s.load(source, opts.SourceType, opts)
	if err != nil {
		return nil, err
	}

	vizType, p, err := profile.Decide(t, opts.VizType)
	if err != nil {
		return nil, err
	}
	if s.verbose {
		if opts.VizType != "" && opts.VizType == vizType {
			fmt.Printf("✓ Using requested visualization: %s\n", vizType)
		} else {
			if opts.VizType != "" {
				fmt.Fprintf(os.Stderr, "⚠ Warning: %q is not a candidate for this dataset, falling back to autonomous choice\n", opts.VizType)
			}
			fmt.Printf("✓ Autonomous decision: %s (confidence: %.0f%%)\n", vizType, p.ConfidenceScores[vizType]*100)
		}
	}

	outPath := opts.OutputPath
	if outPath == "" {
		if err := utils.EnsureDir(s.cfg.OutputDir); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
		outPath = filepath.Join(s.cfg.OutputDir, fmt.Sprintf("autonomous_%s.html", vizType))
	}
	if err := render.WriteHTML(t, vizType, opts.Title, outPath, opts.Bindings); err != nil {
		return nil, fmt.Errorf("render visualization: %w", err)
	}
	if s.verbose {
		fmt.Printf("✓ Wrote visualization to %s\n", outPath)
	}

	res := &GenerateResult{VizType: vizType, Profile: p, OutputPath: outPath}
	if !opts.SkipAnalytics {
		rep, err := insight.Analyze(t, vizType)
		if err != nil {
			return nil, fmt.Errorf("analytics: %w", err)
		}
		res.Report = rep
		if opts.ReportPath != "" {
			if err := rep.WriteJSON(opts.ReportPath); err != nil {
				return nil, fmt.Errorf("export report: %w", err)
			}
			if s.verbose {
				fmt.Printf("✓ Exported analytics report to %s\n", opts.ReportPath)
			}
		}
	}
	return res, nil
}

// BatchResult records the outcome of one source within a batch.
type BatchResult struct {
	Source     string
	Name       string
	OutputPath string
	Err        error
}

// Batch generates visualizations for many sources. A failing source is
// recorded and skipped; it never aborts the rest of the batch.
func (s *System) Batch(sources []string, outputDir string, opts GenerateOptions) ([]BatchResult, error) {
	if outputDir == "" {
		outputDir = filepath.Join(s.cfg.OutputDir, "batch")
	}
	if err := utils.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	results := make([]BatchResult, 0, len(sources))
	for i, source := range sources {
		name := batchName(source, i)
		if s.verbose {
			fmt.Printf("[%d/%d] Processing %s...\n", i+1, len(sources), name)
		}
		perSource := opts
		perSource.OutputPath = filepath.Join(outputDir, name+"_visualization.html")
		res, err := s.Generate(source, perSource)
		br := BatchResult{Source: source, Name: name, Err: err}
		if err == nil {
			br.OutputPath = res.OutputPath
		} else if s.verbose {
			fmt.Fprintf(os.Stderr, "✗ Failed: %s - %v\n", name, err)
		}
		results = append(results, br)
	}
	return results, nil
}

func batchName(source string, i int) string {
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." || strings.ContainsAny(base, "{[") {
		return fmt.Sprintf("dataset_%d", i+1)
	}
	return base
}

func sourceLabel(source string) string {
	if len(source) > 60 {
		return source[:57] + "..."
	}
	return source
}
