package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Doe\n\n5 years Python, AWS, Docker\n"), 0644))

	extractor := NewExtractorService()

	doc, err := extractor.Extract(path)
	require.NoError(t, err)
	require.NotEmpty(t, doc.Chunks)
	assert.Contains(t, doc.Text(), "John Doe")
	assert.Contains(t, doc.Text(), "5 years Python, AWS, Docker")
}

func TestExtractMissingFile(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.Extract(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

func TestExtractUnknownExtensionUsesGenericReader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.rtf")
	content := append([]byte("Jane Smith, Senior Engineer"), 0x00, 0x01, 0x02)
	require.NoError(t, os.WriteFile(path, content, 0644))

	extractor := NewExtractorService()

	doc, err := extractor.Extract(path)
	require.NoError(t, err)
	assert.Contains(t, doc.Text(), "Jane Smith, Senior Engineer")
	// Control bytes stripped by the generic reader.
	assert.NotContains(t, doc.Text(), "\x00")
}

func TestExtractMalformedPDFFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a real pdf but has readable text"), 0644))

	extractor := NewExtractorService()

	doc, err := extractor.Extract(path)
	require.NoError(t, err)
	assert.Contains(t, doc.Text(), "readable text")
}

func TestChunkTextPreservesOrder(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("first paragraph\n\nsecond paragraph\n\nthird paragraph", 20)

	require.NotEmpty(t, chunks)
	joined := ""
	for _, chunk := range chunks {
		joined += chunk + "\n"
	}
	assert.Less(t, strings.Index(joined, "first"), strings.Index(joined, "third"))
}

func TestChunkTextSmallInputSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("short resume text", 1000)

	require.Len(t, chunks, 1)
	assert.Equal(t, "short resume text", chunks[0])
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("  a  \n\n\n  b  \n"))
	assert.Equal(t, "", CleanText("   \n \n"))
}
