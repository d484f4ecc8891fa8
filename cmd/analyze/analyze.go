package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

var (
	analyzeRole         string
	analyzeKeywordsFile string
	analyzeJSON         bool
	analyzeText         bool
	analyzeConcurrency  int
	analyzeVerbose      bool
)

func init() {
	rootCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target role keyword set (default from DEFAULT_ROLE)")
	rootCmd.Flags().StringVarP(&analyzeKeywordsFile, "keywords-file", "k", "", "YAML file overriding the role keyword table")
	rootCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON")
	rootCmd.Flags().BoolVar(&analyzeText, "text", false, "Treat inputs as plain text files and skip extraction")
	rootCmd.Flags().IntVarP(&analyzeConcurrency, "concurrency", "c", 0, "Number of files analyzed in parallel (default from WORKER_CONCURRENCY)")
	rootCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Enable debug logging")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	zlog, err := logger.New(logger.Options{
		Env:   cfg.Server.Env,
		JSON:  cfg.Log.JSON,
		Debug: analyzeVerbose || cfg.Log.Debug,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zlog.Sync()
	if !analyzeVerbose && !cfg.Log.Debug {
		// Keep stdout clean for the report.
		zlog = zap.NewNop()
	}

	keywordsFile := cfg.Analyzer.KeywordsFile
	if analyzeKeywordsFile != "" {
		keywordsFile = analyzeKeywordsFile
	}

	keywordRepo, err := repositories.LoadKeywordRepository(cfg.Analyzer.DefaultRole, keywordsFile)
	if err != nil {
		return err
	}

	role := strings.TrimSpace(analyzeRole)
	if role == "" {
		role = keywordRepo.DefaultRole()
	}
	if _, err := keywordRepo.FindByRole(role); err != nil {
		return fmt.Errorf("role %q (available: %s): %w", role, strings.Join(keywordRepo.Roles(), ", "), err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	annotator, err := services.NewGeminiAnnotator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, zlog)
	if err != nil {
		zlog.Warn("⚠️  NLP annotator unavailable", zap.Error(err))
		annotator = services.NewNoopAnnotator()
	}

	analyzer := services.NewAnalyzerService(
		services.NewTextExtractor(services.NewPDFParserService(), services.NewDOCXParserService()),
		keywordRepo,
		annotator,
		zlog,
	)

	var analyses []models.FileAnalysis
	if analyzeText {
		analyses, err = analyzeTextFiles(ctx, analyzer, args, role)
		if err != nil {
			return err
		}
	} else {
		concurrency := cfg.Analyzer.Concurrency
		if analyzeConcurrency > 0 {
			concurrency = analyzeConcurrency
		}

		worker := services.NewWorker(analyzer, concurrency, len(args), zlog)
		worker.Start(ctx)
		defer worker.Stop()

		analyses, err = analyzeFiles(ctx, worker, args, role)
		if err != nil {
			return err
		}
	}

	if analyzeJSON {
		return writeJSON(cmd.OutOrStdout(), analyses)
	}
	return writeTable(cmd.OutOrStdout(), analyses)
}

// analyzeFiles submits every file to the worker pool and returns results in argument order.
func analyzeFiles(ctx context.Context, worker services.Worker, paths []string, role string) ([]models.FileAnalysis, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("resume file not found: %s", path)
		}
	}

	analyses := make([]models.FileAnalysis, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			result, err := worker.Submit(ctx, services.AnalysisJob{
				Document: models.NewDocument(path),
				Role:     role,
			})
			analyses[i] = models.FileAnalysis{File: path, Role: role, Result: result}
			errs[i] = err
		}(i, path)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to analyze %s: %w", paths[i], err)
		}
	}

	return analyses, nil
}

func analyzeTextFiles(ctx context.Context, analyzer services.AnalyzerService, paths []string, role string) ([]models.FileAnalysis, error) {
	analyses := make([]models.FileAnalysis, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read text file: %w", err)
		}
		analyses = append(analyses, models.FileAnalysis{
			File:   path,
			Role:   role,
			Result: analyzer.AnalyzeText(ctx, string(content), role),
		})
	}
	return analyses, nil
}

func writeJSON(w io.Writer, analyses []models.FileAnalysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analyses); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, analyses []models.FileAnalysis) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tROLE\tSCORE\tMISSING KEYWORDS")
	for _, a := range analyses {
		missing := strings.Join(a.Result.KeywordSuggestions, ", ")
		if missing == "" {
			missing = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", a.File, a.Role, a.Result.Score, missing)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, a := range analyses {
		fmt.Fprintf(w, "\n%s\n", a.File)
		for _, tip := range a.Result.FormattingTips {
			fmt.Fprintf(w, "  - %s\n", tip)
		}
	}
	return nil
}
