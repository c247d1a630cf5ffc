// Command cli runs a full analysis locally: it reads statement records
// from a JSON file, executes the pipeline with built-in industry
// defaults, and prints the completed run as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"finsight/pkg/core/benchmark"
	"finsight/pkg/core/metrics"
	"finsight/pkg/core/narrative"
	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/store"
	"finsight/pkg/models"
)

// analysisInput is the file format: either a full submission with
// company details, or a bare record array.
type analysisInput struct {
	Company models.Company     `json:"company"`
	Depth   string             `json:"depth,omitempty"`
	Records []models.RawRecord `json:"records"`
}

func main() {
	var (
		inputPath string
		depth     string
		verbose   bool
	)

	rootCmd := &cobra.Command{
		Use:           "finsight",
		Short:         "Financial statement analysis toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze financial statements from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(inputPath, depth, verbose)
		},
	}
	analyzeCmd.Flags().StringVar(&inputPath, "input", "", "path to the records JSON file")
	analyzeCmd.Flags().StringVar(&depth, "depth", string(models.DepthComprehensive), "analysis depth: basic, intermediate, advanced or comprehensive")
	analyzeCmd.Flags().BoolVar(&verbose, "verbose", false, "log pipeline progress to stderr")
	_ = analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runAnalyze(inputPath, depth string, verbose bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var input analysisInput
	if err := json.Unmarshal(data, &input); err != nil {
		// Bare record arrays are accepted too.
		if arrErr := json.Unmarshal(data, &input.Records); arrErr != nil {
			return fmt.Errorf("parse input: %w", err)
		}
	}
	if len(input.Records) == 0 {
		return fmt.Errorf("input contains no records")
	}
	if input.Depth != "" {
		depth = input.Depth
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	runs := store.NewMemoryRunStore()
	synthesizer := narrative.NewSynthesizer(nil, logger)
	orchestrator := pipeline.NewOrchestrator(runs, benchmark.NewStatic(), synthesizer, metrics.DefaultCatalogue(), logger)

	ctx := context.Background()
	submitted, err := orchestrator.Submit(ctx, pipeline.Request{
		Company: input.Company,
		Depth:   models.AnalysisDepth(depth),
		Records: input.Records,
	})
	if err != nil {
		return err
	}
	orchestrator.Wait()

	run, err := runs.GetRun(ctx, submitted.ID)
	if err != nil {
		return err
	}
	if run.Status == models.RunStatusFailed {
		return fmt.Errorf("analysis failed: %s", run.Error)
	}

	out, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
