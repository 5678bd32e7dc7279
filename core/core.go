// Package core has the metrics engine, aggregation and curve logic for citescope.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/internal/loader"
	"github.com/huangsam/citescope/internal/outwriter"
	"github.com/huangsam/citescope/schema"
)

// Sentinel errors surfaced by the engine. The core never suppresses these;
// callers decide user-facing messaging.
var (
	// ErrEmptySequence is returned when a citation sequence has zero events.
	ErrEmptySequence = errors.New("citation sequence is empty")

	// ErrInvalidAggregationMode is returned when a top-N merge receives an
	// unrecognized aggregation mode.
	ErrInvalidAggregationMode = errors.New("aggregation mode must be count or rank")

	// ErrInvalidTarget is returned when a Lorenz threshold target falls
	// outside (0, 1].
	ErrInvalidTarget = errors.New("target citation proportion must be in (0, 1]")
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, store contract.HistoryStore) error

// loadDatasets reads every configured dataset path through the CSV loader.
// Dataset order follows cfg.Paths so output is deterministic across runs.
func loadDatasets(ctx context.Context, cfg *contract.Config) ([]schema.Dataset, error) {
	ldr := loader.NewCSVLoader()
	datasets := make([]schema.Dataset, 0, len(cfg.Paths))
	for _, path := range cfg.Paths {
		ds, err := ldr.Load(ctx, path, cfg.Column, cfg.Separator)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

// GetMetricReports computes one MetricReport per dataset.
func GetMetricReports(datasets []schema.Dataset) ([]schema.MetricReport, error) {
	reports := make([]schema.MetricReport, 0, len(datasets))
	for _, ds := range datasets {
		report, err := ComputeMetricReport(ds.Label, ds.Citations)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", ds.Label, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// ExecuteMetrics runs the per-dataset metrics analysis and prints the reports.
// It serves as the main entry point for the 'metrics' command.
func ExecuteMetrics(ctx context.Context, cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()
	datasets, err := loadDatasets(ctx, cfg)
	if err != nil {
		return err
	}
	reports, err := GetMetricReports(datasets)
	if err != nil {
		return err
	}
	if cfg.Record && store != nil {
		if err := recordRun(store, start, reports); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
	}
	duration := time.Since(start)
	return outwriter.WriteMetricReports(reports, cfg, duration)
}

// GetPresenceTable builds the merged top-N author table for the datasets.
func GetPresenceTable(datasets []schema.Dataset, topN int, mode schema.AggregationMode) (schema.PresenceTable, error) {
	tables := make(map[string]schema.FrequencyTable, len(datasets))
	labels := make([]string, 0, len(datasets))
	for _, ds := range datasets {
		if len(ds.Citations) == 0 {
			return schema.PresenceTable{}, fmt.Errorf("dataset %s: %w", ds.Label, ErrEmptySequence)
		}
		tables[ds.Label] = BuildFrequencyTable(ds.Citations)
		labels = append(labels, ds.Label)
	}
	return MergeTopN(tables, labels, topN, mode)
}

// ExecuteAuthors runs the top-N author comparison and prints the presence table.
// It serves as the main entry point for the 'authors' command.
func ExecuteAuthors(ctx context.Context, cfg *contract.Config, _ contract.HistoryStore) error {
	start := time.Now()
	datasets, err := loadDatasets(ctx, cfg)
	if err != nil {
		return err
	}
	table, err := GetPresenceTable(datasets, cfg.TopN, cfg.Agg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WritePresenceTable(table, cfg, duration)
}

// GetSimilarityMatrix builds the pairwise Jaccard matrix for the datasets.
func GetSimilarityMatrix(datasets []schema.Dataset) (schema.SimilarityMatrix, error) {
	return BuildSimilarityMatrix(datasets)
}

// ExecuteSimilarity runs the pairwise similarity analysis and prints the matrix.
// It serves as the main entry point for the 'similarity' command.
func ExecuteSimilarity(ctx context.Context, cfg *contract.Config, _ contract.HistoryStore) error {
	start := time.Now()
	datasets, err := loadDatasets(ctx, cfg)
	if err != nil {
		return err
	}
	matrix, err := GetSimilarityMatrix(datasets)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteSimilarityMatrix(matrix, cfg, duration)
}

// GetLorenzCurve builds the Lorenz curve for a single dataset.
func GetLorenzCurve(ds schema.Dataset) (schema.LorenzCurve, error) {
	if len(ds.Citations) == 0 {
		return schema.LorenzCurve{}, fmt.Errorf("dataset %s: %w", ds.Label, ErrEmptySequence)
	}
	return BuildLorenzCurve(ds.Label, BuildFrequencyTable(ds.Citations))
}

// ExecuteLorenz runs the inequality-curve analysis for one dataset and prints
// the curve, plus the threshold author share when a target is configured.
// It serves as the main entry point for the 'lorenz' command.
func ExecuteLorenz(ctx context.Context, cfg *contract.Config, _ contract.HistoryStore) error {
	start := time.Now()
	datasets, err := loadDatasets(ctx, cfg)
	if err != nil {
		return err
	}
	if len(datasets) != 1 {
		return errors.New("lorenz analysis takes exactly one dataset")
	}
	curve, err := GetLorenzCurve(datasets[0])
	if err != nil {
		return err
	}
	threshold := -1.0
	if cfg.Target > 0 {
		threshold, err = FindThresholdAuthorProportion(curve, cfg.Target)
		if err != nil {
			return err
		}
	}
	duration := time.Since(start)
	return outwriter.WriteLorenzCurve(curve, threshold, cfg, duration)
}

// recordRun persists one metrics run with its reports into the history store.
func recordRun(store contract.HistoryStore, start time.Time, reports []schema.MetricReport) error {
	runID, err := store.BeginRun(start)
	if err != nil {
		return err
	}
	for _, r := range reports {
		if err := store.RecordReport(runID, r); err != nil {
			return err
		}
	}
	return store.EndRun(runID, len(reports))
}
