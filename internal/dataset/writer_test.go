package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRows(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		opts WriteOptions
		want string
	}{
		{
			name: "no rows writes nothing",
			rows: nil,
			want: "",
		},
		{
			name: "semicolon rows without header",
			rows: []Row{{"1", "a"}, {"2", "b"}},
			want: "1;a\n2;b\n",
		},
		{
			name: "field containing delimiter is quoted",
			rows: []Row{{"x;y", "z"}},
			want: "\"x;y\";z\n",
		},
		{
			name: "embedded quote is doubled",
			rows: []Row{{`say "hi"`, "1"}},
			want: "\"say \"\"hi\"\"\";1\n",
		},
		{
			name: "ragged rows keep their arity",
			rows: []Row{{"1"}, {"1", "2", "3"}},
			want: "1\n1;2;3\n",
		},
		{
			name: "single empty field is quoted",
			rows: []Row{{""}, {"a"}},
			want: "\"\"\na\n",
		},
		{
			name: "empty field among others stays unquoted",
			rows: []Row{{"", "b"}},
			want: ";b\n",
		},
		{
			name: "custom delimiter",
			rows: []Row{{"a", "b"}},
			opts: WriteOptions{Delimiter: '\t'},
			want: "a\tb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteRows(&buf, tt.rows, tt.opts))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteRows_RoundTrip(t *testing.T) {
	rows := []Row{{"1", "ünïcödé", "x;y"}, {"2", "", "\"q\""}, {"3", "tab\there", "end"}}

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, rows, WriteOptions{}))

	ds, err := Load(strings.NewReader("c1;c2;c3\n"+buf.String()), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, rows, ds.Rows)
}

func TestWriteRows_SingleEmptyFieldRoundTrip(t *testing.T) {
	rows := []Row{{""}, {"a"}, {""}}

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, rows, WriteOptions{}))

	ds, err := Load(strings.NewReader("only\n"+buf.String()), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, rows, ds.Rows)
	assert.Zero(t, ds.Malformed)
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	train := []Row{{"1", "a"}, {"3", "c"}}
	test := []Row{{"2", "b"}}

	a, err := WriteArtifacts(dir, train, test, WriteOptions{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, TrainFile), a.Train)
	assert.Equal(t, filepath.Join(dir, TestFile), a.Test)
	assert.Equal(t, filepath.Join(dir, TestCopyFile), a.TestCopy)
	assert.Equal(t, []string{a.Train, a.Test, a.TestCopy}, a.Paths())

	trainBytes, err := os.ReadFile(a.Train)
	require.NoError(t, err)
	testBytes, err := os.ReadFile(a.Test)
	require.NoError(t, err)
	copyBytes, err := os.ReadFile(a.TestCopy)
	require.NoError(t, err)

	assert.Equal(t, "1;a\n3;c\n", string(trainBytes))
	assert.Equal(t, "2;b\n", string(testBytes))
	assert.Equal(t, testBytes, copyBytes)
}

func TestWriteArtifacts_EmptySubsets(t *testing.T) {
	dir := t.TempDir()

	a, err := WriteArtifacts(dir, nil, nil, WriteOptions{})
	require.NoError(t, err)

	for _, p := range a.Paths() {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Zero(t, info.Size(), p)
	}
}

func TestWriteArtifacts_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "split")

	_, err := WriteArtifacts(dir, []Row{{"1"}}, nil, WriteOptions{})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, TrainFile))
}

func TestWriteArtifacts_OverwritesPrevious(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TestFile), []byte("stale;data\nmore\n"), 0o644))

	_, err := WriteArtifacts(dir, nil, []Row{{"fresh"}}, WriteOptions{})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, TestFile))
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(got))
}

func TestWriteArtifacts_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where test.csv should go makes the second write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, TestFile), 0o750))

	_, err := WriteArtifacts(dir, []Row{{"1"}}, []Row{{"2"}}, WriteOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), TestFile)

	assert.FileExists(t, filepath.Join(dir, TrainFile))
	assert.NoFileExists(t, filepath.Join(dir, TestCopyFile))
}
