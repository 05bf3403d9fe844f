// Package dataset loads delimited tabular files into memory and writes row
// subsets back out as headerless delimited text.
package dataset

import "unicode/utf8"

// DefaultDelimiter is the field separator of input and output files.
const DefaultDelimiter = ';'

// Header is the ordered list of column names from the first record.
type Header []string

// Arity returns the number of columns.
func (h Header) Arity() int {
	return len(h)
}

// Row is one data record. Fields are opaque text tokens.
type Row []string

// Dataset is a header plus every data row, in file order.
type Dataset struct {
	Header Header
	Rows   []Row

	// Malformed counts rows whose field count differs from the header's.
	// They are kept in Rows unless arity validation is enabled.
	Malformed int
	// FirstMalformedLine is the input line of the first malformed row, or 0.
	FirstMalformedLine int
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ValidDelimiter reports whether r can separate fields.
// Quote, CR, LF, NUL and invalid runes are rejected.
func ValidDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
