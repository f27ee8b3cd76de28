package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"omr-studio/internal/config"
	"omr-studio/internal/domain"
	"omr-studio/internal/dto"
	"omr-studio/internal/logger"
	"omr-studio/internal/service"
)

// version is injected via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "omrctl",
		Short: "Design and check OMR answer sheet templates",
		Long: `omrctl generates bubble grid layouts, scores region sets against
exam standards profiles and prints the profiles themselves.

All results are JSON on stdout, so they pipe cleanly into jq or into
fixture files for the API.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The services log through the shared zap logger, which writes
			// to stdout. Error level keeps log lines out of the JSON output.
			return logger.Initialize(config.LoggerConfig{Level: "error", Env: "production"})
		},
	}

	root.AddCommand(generateCmd(), validateCmd(), standardsCmd())
	return root
}

func generateCmd() *cobra.Command {
	var (
		output string
		asOMR  bool
	)
	req := dto.GenerateLayoutRequest{
		QuestionCount:       20,
		OptionCount:         4,
		Layout:              string(domain.LayoutVertical),
		StartQuestionNumber: 1,
		BubbleSize:          12,
		Spacing:             20,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a bubble grid layout",
		Long: `Generate computes bubble positions for an answer grid and prints
them as JSON. The default output is the flat layout with per-bubble
coordinates; --omr prints the grouped per-question config used by mark
readers instead.

Sizes and spacings are millimeters. Configs outside the recommended
bubble size range still generate, with a warning on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(req, asOMR, output)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&req.QuestionCount, "questions", "q", req.QuestionCount, "number of questions")
	f.IntVarP(&req.OptionCount, "options", "n", req.OptionCount, "options per question (2-8)")
	f.StringVarP(&req.Layout, "layout", "l", req.Layout, "bubble arrangement: vertical, horizontal or matrix")
	f.IntVar(&req.StartQuestionNumber, "start", req.StartQuestionNumber, "number of the first question")
	f.Float64Var(&req.BubbleSize, "bubble-size", req.BubbleSize, "bubble diameter in millimeters")
	f.Float64Var(&req.Spacing, "spacing", req.Spacing, "distance between bubble centers in millimeters")
	f.IntVar(&req.RowCount, "rows", 0, "matrix rows (0 = derive from question count)")
	f.IntVar(&req.ColumnCount, "cols", 0, "matrix columns (0 = derive from question count)")
	f.BoolVar(&asOMR, "omr", false, "print the grouped OMR config instead of the flat layout")
	f.StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")

	return cmd
}

func runGenerate(req dto.GenerateLayoutRequest, asOMR bool, output string) error {
	svc := service.NewTemplateService(domain.NewRegistry())

	resp, err := svc.GenerateLayout(req)
	if err != nil {
		return err
	}
	for _, w := range resp.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	if asOMR {
		return writeJSON(resp.OMRConfig, output)
	}
	return writeJSON(resp.Layout, output)
}

func validateCmd() *cobra.Command {
	var (
		examType string
		dpi      int
	)

	cmd := &cobra.Command{
		Use:   "validate <template.json>",
		Short: "Score a template against an exam standards profile",
		Long: `Validate reads a template file, scores its regions and positioning
markers against the standards profile for the given exam type and
prints the quality report.

The input is either an object with "regions" and optional "markers"
arrays, as produced by the session export endpoint, or a bare JSON
array of regions. The command fails when the template lands in the
poor tier.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], examType, dpi)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&examType, "exam-type", "e", "", "standards profile name (default profile when empty)")
	f.IntVar(&dpi, "dpi", 0, "treat template geometry as pixels at this print resolution")

	return cmd
}

func runValidate(path, examType string, dpi int) error {
	if dpi < 0 {
		return fmt.Errorf("dpi must not be negative, got %d", dpi)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	req := dto.TemplateElementsRequest{ExamType: examType, DPI: dpi}
	if err := json.Unmarshal(data, &req); err != nil {
		// Bare region arrays are accepted too.
		if arrErr := json.Unmarshal(data, &req.Regions); arrErr != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if len(req.Regions)+len(req.Markers) == 0 {
		return fmt.Errorf("%s contains no regions or markers", path)
	}

	svc := service.NewTemplateService(domain.NewRegistry())
	resp := svc.ScoreTemplate(req)

	if err := writeJSON(resp, "-"); err != nil {
		return err
	}
	if resp.Tier == domain.TierPoor {
		return fmt.Errorf("template scored %d of 100, tier %s", resp.Report.OverallScore, resp.Tier)
	}
	return nil
}

func standardsCmd() *cobra.Command {
	var (
		dpi  int
		list bool
	)

	cmd := &cobra.Command{
		Use:   "standards [exam-type]",
		Short: "Print an exam standards profile",
		Long: `Standards prints the resolved profile for an exam type as JSON.
Without an exam type the default profile is printed. Profile lengths
are millimeters unless --dpi converts them to pixels.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			examType := ""
			if len(args) == 1 {
				examType = args[0]
			}
			return runStandards(examType, dpi, list)
		},
	}

	f := cmd.Flags()
	f.IntVar(&dpi, "dpi", 0, "convert the profile from millimeters to pixels at this resolution")
	f.BoolVar(&list, "list", false, "print the registered exam type names instead")

	return cmd
}

func runStandards(examType string, dpi int, list bool) error {
	svc := service.NewTemplateService(domain.NewRegistry())

	if list {
		return writeJSON(svc.ListStandards(), "-")
	}
	if dpi < 0 {
		return fmt.Errorf("dpi must not be negative, got %d", dpi)
	}
	return writeJSON(svc.GetStandards(examType, dpi), "-")
}

func writeJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
