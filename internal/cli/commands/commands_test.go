// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapsplit/internal/cli/config"
	"github.com/leapstack-labs/leapsplit/internal/dataset"
	"github.com/leapstack-labs/leapsplit/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCommand returns a bare command whose context carries cfg and a test logger.
func newTestCommand(t *testing.T, cfg *config.Config) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	out := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	cmd.SetErr(out)

	ctx := config.WithConfig(context.Background(), cfg)
	ctx = config.WithLogger(ctx, testutil.NewTestLogger(t))
	cmd.SetContext(ctx)
	return cmd, out
}

func TestNewSchemaCommand(t *testing.T) {
	cmd := NewSchemaCommand()

	assert.Equal(t, "schema <input-file>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	for _, name := range []string{"format", "columns-only"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %q should exist", name)
	}
}

func TestRunSplit(t *testing.T) {
	input := testutil.WriteDataset(t, t.TempDir(), "a;b;c", 100)
	cfg := config.DefaultConfig()
	cfg.OutputDir = t.TempDir()

	cmd, out := newTestCommand(t, cfg)
	require.NoError(t, RunSplit(cmd, input))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	for _, name := range []string{dataset.TrainFile, dataset.TestFile, dataset.TestCopyFile} {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, name))
	}
}

func TestRunSplit_UsesConfiguredDelimiter(t *testing.T) {
	input := filepath.Join(t.TempDir(), "pipes.txt")
	require.NoError(t, os.WriteFile(input, []byte("a|b\n1|2\n"), 0o644))

	cfg := config.DefaultConfig()
	cfg.OutputDir = t.TempDir()
	cfg.Delimiter = "|"

	cmd, _ := newTestCommand(t, cfg)
	require.NoError(t, RunSplit(cmd, input))

	train, err := os.ReadFile(filepath.Join(cfg.OutputDir, dataset.TrainFile))
	require.NoError(t, err)
	test, err := os.ReadFile(filepath.Join(cfg.OutputDir, dataset.TestFile))
	require.NoError(t, err)
	assert.Equal(t, "1|2\n", string(train)+string(test))
}

func TestRunSchema_Formats(t *testing.T) {
	input := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(input, []byte("sepal;petal;class\n1;2;x\n3;4\n"), 0o644))

	tests := []struct {
		format  string
		want    []string
		notWant []string
	}{
		{
			format: "table",
			want:   []string{"sepal", "petal", "class", "Columns: 3", "Rows: 2", "Malformed rows: 1"},
		},
		{
			format: "markdown",
			want:   []string{"| 1 | sepal |", "| 3 | class |", "Rows: 2"},
		},
		{
			format:  "csv",
			want:    []string{"1,sepal", "3,class"},
			notWant: []string{"Rows:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cmd, out := newTestCommand(t, config.DefaultConfig())
			require.NoError(t, runSchema(cmd, input, tt.format))

			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, out.String(), notWant)
			}
		})
	}
}

func TestRunColumns(t *testing.T) {
	// Only the header is read, so a broken quote further down is not reached.
	input := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(input, []byte("sepal;petal;class\n1;\"2\n"), 0o644))

	cmd, out := newTestCommand(t, config.DefaultConfig())
	require.NoError(t, runColumns(cmd, input, "table"))

	for _, want := range []string{"sepal", "petal", "class", "Columns: 3"} {
		assert.Contains(t, out.String(), want)
	}
	assert.NotContains(t, out.String(), "Rows:")
}

func TestRunColumns_Errors(t *testing.T) {
	cmd, _ := newTestCommand(t, config.DefaultConfig())

	err := runColumns(cmd, "unused.csv", "yaml")
	assert.ErrorContains(t, err, "unknown format")

	err = runColumns(cmd, filepath.Join(t.TempDir(), "missing.csv"), "table")
	var readErr *dataset.ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestRunSchema_RejectsUnterminatedQuote(t *testing.T) {
	input := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(input, []byte("sepal;petal;class\n1;\"2\n"), 0o644))

	cmd, _ := newTestCommand(t, config.DefaultConfig())
	assert.ErrorIs(t, runSchema(cmd, input, "table"), csv.ErrQuote)
}

func TestRunSchema_UnknownFormat(t *testing.T) {
	cmd, _ := newTestCommand(t, config.DefaultConfig())

	err := runSchema(cmd, "unused.csv", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRunSchema_MissingFile(t *testing.T) {
	cmd, _ := newTestCommand(t, config.DefaultConfig())

	err := runSchema(cmd, filepath.Join(t.TempDir(), "missing.csv"), "table")

	var readErr *dataset.ReadError
	assert.ErrorAs(t, err, &readErr)
}
