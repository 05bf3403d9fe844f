package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/leapsplit/internal/cli/config"
	"github.com/leapstack-labs/leapsplit/internal/dataset"
	"github.com/spf13/cobra"
)

// Schema output formats.
const (
	schemaFormatTable    = "table"
	schemaFormatMarkdown = "markdown"
	schemaFormatCSV      = "csv"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	var (
		format      string
		columnsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "schema <input-file>",
		Short: "Show the columns and row statistics of an input file",
		Long: `Read an input file the same way a split does and report its header
columns, the number of data rows, and how many rows have a field count
that differs from the header. Nothing is written to disk.`,
		Example: `  # Inspect a dataset before splitting
  leapsplit schema data.csv

  # Markdown output for docs or agents
  leapsplit schema data.csv --format markdown

  # Read only the header line of a large file
  leapsplit schema data.csv --columns-only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if columnsOnly {
				return runColumns(cmd, args[0], format)
			}
			return runSchema(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", schemaFormatTable, "Output format (table|markdown|csv)")
	cmd.Flags().BoolVar(&columnsOnly, "columns-only", false, "Read only the header line and skip row statistics")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{schemaFormatTable, schemaFormatMarkdown, schemaFormatCSV}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func checkSchemaFormat(format string) error {
	switch format {
	case schemaFormatTable, schemaFormatMarkdown, schemaFormatCSV:
		return nil
	}
	return fmt.Errorf("unknown format %q: use table, markdown or csv", format)
}

func runSchema(cmd *cobra.Command, inputPath, format string) error {
	if err := checkSchemaFormat(format); err != nil {
		return err
	}

	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	// Arity validation stays off so malformed rows can be counted.
	ds, err := dataset.LoadFile(inputPath, dataset.LoadOptions{Delimiter: cfg.DelimiterRune()})
	if err != nil {
		return err
	}
	logger.Debug("loaded dataset for schema", "input", inputPath, "rows", ds.Len())

	w := cmd.OutOrStdout()
	if !renderColumns(w, ds.Header, format) {
		return nil
	}
	_, _ = fmt.Fprintf(w, "Rows: %d\n", ds.Len())
	_, _ = fmt.Fprintf(w, "Malformed rows: %d\n", ds.Malformed)
	return nil
}

// runColumns reports the header without scanning the data rows.
func runColumns(cmd *cobra.Command, inputPath, format string) error {
	if err := checkSchemaFormat(format); err != nil {
		return err
	}

	cfg := config.FromContext(cmd.Context())

	header, err := dataset.ReadFileHeader(inputPath, cfg.DelimiterRune())
	if err != nil {
		return err
	}
	config.GetLogger(cmd.Context()).Debug("read header", "input", inputPath, "columns", header.Arity())

	renderColumns(cmd.OutOrStdout(), header, format)
	return nil
}

// renderColumns writes the column table and reports whether a plain-text
// summary may follow it. CSV output is table data only.
func renderColumns(w io.Writer, header dataset.Header, format string) bool {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "Column"})
	for i, name := range header {
		t.AppendRow(table.Row{i + 1, name})
	}

	switch format {
	case schemaFormatCSV:
		t.RenderCSV()
		return false
	case schemaFormatMarkdown:
		t.RenderMarkdown()
		_, _ = fmt.Fprintln(w)
	default:
		t.Render()
	}

	_, _ = fmt.Fprintf(w, "Columns: %d\n", header.Arity())
	return true
}
