package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadOptions controls how input files are parsed.
type LoadOptions struct {
	// Delimiter separates fields. Zero means DefaultDelimiter.
	Delimiter rune
	// ValidateArity rejects rows whose field count differs from the header
	// with a *ParseError instead of passing them through.
	ValidateArity bool
}

func (o LoadOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// newCSVReader wraps r in a reader that allows variable field counts and
// strips a leading byte-order mark. Quoting is strict: a quoted field left
// open at EOF is a parse error, not a field holding the rest of the file.
func newCSVReader(r io.Reader, delim rune) *csv.Reader {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	return cr
}

// ReadHeader returns the column names from the first record of r.
func ReadHeader(r io.Reader, delim rune) (Header, error) {
	if delim == 0 {
		delim = DefaultDelimiter
	}
	return readHeader(newCSVReader(r, delim))
}

func readHeader(cr *csv.Reader) (Header, error) {
	record, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	return Header(record), nil
}

// Load reads a header and all data rows from r into memory.
func Load(r io.Reader, opts LoadOptions) (*Dataset, error) {
	cr := newCSVReader(r, opts.delimiter())

	header, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Header: header, Rows: []Row{}}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse row: %w", err)
		}

		if len(record) != header.Arity() {
			line, _ := cr.FieldPos(0)
			if opts.ValidateArity {
				return nil, &ParseError{Line: line, Got: len(record), Want: header.Arity()}
			}
			if ds.Malformed == 0 {
				ds.FirstMalformedLine = line
			}
			ds.Malformed++
		}

		ds.Rows = append(ds.Rows, Row(record))
	}

	return ds, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	ds, err := Load(f, opts)
	if err != nil {
		// e.g. path is a directory: open succeeds, the first read fails
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, &ReadError{Path: path, Err: pathErr}
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ReadFileHeader opens path and returns only its header.
func ReadFileHeader(path string, delim rune) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	header, err := ReadHeader(f, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return header, nil
}
