package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pdfs")

	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, fs.DataDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStorageName(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	cases := []struct {
		name     string
		workID   uint
		original string
		expected string
	}{
		{"plain", 1, "thesis.pdf", "work_1_thesis.pdf"},
		{"spaces and unicode", 7, "my thesis (fínal).pdf", "work_7_my_thesis_f_nal_.pdf"},
		{"path traversal", 3, "../../etc/passwd", "work_3_passwd"},
		{"windows path", 4, `C:\Users\evil\doc.pdf`, "work_4_doc.pdf"},
		{"empty", 5, "", "work_5_file"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fs.StorageName(tc.workID, tc.original)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, got, filepath.Base(got))
		})
	}
}

func TestStorageNameDeterministic(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	first := fs.StorageName(42, "report.pdf")
	second := fs.StorageName(42, "report.pdf")
	assert.Equal(t, first, second)
}

func TestSaveAndOpenRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	content := []byte("%PDF-1.4 test content")
	require.NoError(t, fs.Save("work_1_test.pdf", bytes.NewReader(content)))

	assert.True(t, fs.Exists("work_1_test.pdf"))

	f, err := fs.Open("work_1_test.pdf")
	require.NoError(t, err)
	defer f.Close()

	stored, err := os.ReadFile(fs.Path("work_1_test.pdf"))
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	// No temp file left behind
	assert.False(t, fs.Exists("work_1_test.pdf.tmp"))
}

func TestSaveOverwritesExisting(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Save("work_2_doc.pdf", bytes.NewReader([]byte("first"))))
	require.NoError(t, fs.Save("work_2_doc.pdf", bytes.NewReader([]byte("second"))))

	stored, err := os.ReadFile(fs.Path("work_2_doc.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), stored)
}

func TestExistsMissingFile(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.False(t, fs.Exists("work_9_missing.pdf"))

	_, err = fs.Open("work_9_missing.pdf")
	assert.True(t, os.IsNotExist(err))
}
