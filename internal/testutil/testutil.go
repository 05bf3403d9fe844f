// Package testutil provides logging and fixture helpers for tests.
package testutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes to t.Log, so log
// lines only show up for failing tests or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// WriteDataset writes a ';'-delimited file with the given header and n
// generated rows of the form "<i>;<i*2>;<i%2>" and returns its path.
// header must have three columns.
func WriteDataset(t testing.TB, dir string, header string, n int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d;%d;%d\n", i, i*2, i%2)
	}

	path := filepath.Join(dir, "dataset.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}
