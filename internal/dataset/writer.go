package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Artifact file names. Downstream training jobs expect these exact names.
const (
	TrainFile    = "train.csv"
	TestFile     = "test.csv"
	TestCopyFile = "test_copy.csv"
)

// WriteOptions controls row serialization.
type WriteOptions struct {
	// Delimiter separates fields. Zero means DefaultDelimiter.
	Delimiter rune
}

func (o WriteOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// Artifacts holds the paths of the files written for one split.
type Artifacts struct {
	Train    string
	Test     string
	TestCopy string
}

// Paths returns the artifact paths in write order.
func (a Artifacts) Paths() []string {
	return []string{a.Train, a.Test, a.TestCopy}
}

// ArtifactsIn returns the artifact paths inside dir.
func ArtifactsIn(dir string) Artifacts {
	return Artifacts{
		Train:    filepath.Join(dir, TrainFile),
		Test:     filepath.Join(dir, TestFile),
		TestCopy: filepath.Join(dir, TestCopyFile),
	}
}

// WriteRows writes rows to w, one per line, with no header.
func WriteRows(w io.Writer, rows []Row, opts WriteOptions) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.delimiter()

	for _, row := range rows {
		if isEmptyRecord(row) {
			// csv.Writer emits a blank line here, which readers skip.
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `""`+"\n"); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func isEmptyRecord(row Row) bool {
	return len(row) == 1 && row[0] == ""
}

// WriteFile creates (or truncates) path and writes rows to it.
func WriteFile(path string, rows []Row, opts WriteOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := WriteRows(f, rows, opts); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteArtifacts writes train.csv, test.csv and test_copy.csv into dir, in
// that order. The three writes are independent: a failure leaves any
// earlier artifact on disk.
func WriteArtifacts(dir string, train, test []Row, opts WriteOptions) (Artifacts, error) {
	if dir == "" {
		dir = "."
	}
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return Artifacts{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	a := ArtifactsIn(dir)
	if err := WriteFile(a.Train, train, opts); err != nil {
		return a, err
	}
	if err := WriteFile(a.Test, test, opts); err != nil {
		return a, err
	}
	if err := WriteFile(a.TestCopy, test, opts); err != nil {
		return a, err
	}
	return a, nil
}
