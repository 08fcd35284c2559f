package pdftext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	in := "  Jane Doe  \n\n\t\nSenior Engineer\r\n   \nGo, Kubernetes "
	assert.Equal(t, "Jane Doe\nSenior Engineer\nGo, Kubernetes", Clean(in))
	assert.Equal(t, "", Clean("\n \n"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "héll", Truncate("héllo wörld", 4))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestExtractRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	_, err := Extract(path, 100)
	assert.Error(t, err)

	_, err = Extract(filepath.Join(t.TempDir(), "missing.pdf"), 100)
	assert.Error(t, err)
}
