package engine

// run.go - load, partition and write for one input file

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/leapsplit/internal/dataset"
	"github.com/leapstack-labs/leapsplit/internal/partition"
)

// Result summarizes a completed split.
type Result struct {
	RunID     string
	Input     string
	Header    dataset.Header
	Rows      int
	TrainRows int
	TestRows  int
	Malformed int
	Artifacts dataset.Artifacts
	Duration  time.Duration
}

// Run splits the file at inputPath into train and test artifacts.
// Any error aborts the run; artifacts already written stay on disk.
func (e *Engine) Run(ctx context.Context, inputPath string) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()
	logger := e.logger.With("run_id", runID, "input", inputPath)

	logger.InfoContext(ctx, "starting split")

	ds, err := dataset.LoadFile(inputPath, dataset.LoadOptions{
		Delimiter:     e.delimiter,
		ValidateArity: e.validateArity,
	})
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "loaded dataset", "rows", ds.Len(), "columns", ds.Header.Arity())
	if ds.Malformed > 0 {
		logger.WarnContext(ctx, "rows with inconsistent field count passed through",
			"count", ds.Malformed,
			"first_line", ds.FirstMalformedLine,
			"expected_fields", ds.Header.Arity(),
		)
	}

	train, test := partition.Partition(e.sampler, ds.Rows)

	logger.DebugContext(ctx, "partitioned rows",
		"seed", e.sampler.Seed,
		"threshold", e.sampler.Threshold,
		"train", len(train),
		"test", len(test),
	)

	artifacts, err := dataset.WriteArtifacts(e.outputDir, train, test, dataset.WriteOptions{
		Delimiter: e.delimiter,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write split artifacts: %w", err)
	}

	result := &Result{
		RunID:     runID,
		Input:     inputPath,
		Header:    ds.Header,
		Rows:      ds.Len(),
		TrainRows: len(train),
		TestRows:  len(test),
		Malformed: ds.Malformed,
		Artifacts: artifacts,
		Duration:  time.Since(start),
	}

	logger.InfoContext(ctx, "split complete",
		"train", result.TrainRows,
		"test", result.TestRows,
		"output_dir", e.outputDir,
		"duration", result.Duration,
	)

	return result, nil
}
