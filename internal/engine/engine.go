// Package engine runs a train/test split: load the input file, draw the
// inclusion mask, and write the three split artifacts.
package engine

import (
	"log/slog"

	"github.com/leapstack-labs/leapsplit/internal/dataset"
	"github.com/leapstack-labs/leapsplit/internal/partition"
)

// Engine orchestrates a single split run.
type Engine struct {
	// Structured logger
	logger *slog.Logger

	outputDir     string
	delimiter     rune
	validateArity bool
	sampler       partition.Sampler
}

// Config holds engine configuration.
type Config struct {
	// OutputDir receives train.csv, test.csv and test_copy.csv ("." if empty)
	OutputDir string
	// Delimiter separates fields in input and output (';' if zero)
	Delimiter rune
	// ValidateArity fails the load on rows whose field count differs from the header
	ValidateArity bool
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine. The split seed and threshold are fixed.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	delim := cfg.Delimiter
	if delim == 0 {
		delim = dataset.DefaultDelimiter
	}

	logger.Debug("initializing engine", "output_dir", outputDir, "delimiter", string(delim))

	return &Engine{
		logger:        logger,
		outputDir:     outputDir,
		delimiter:     delim,
		validateArity: cfg.ValidateArity,
		sampler:       partition.NewSampler(),
	}
}
