package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractorService turns an uploaded file into plain text. The extension
// picks the reader; anything unknown or malformed falls through to a
// best-effort generic reader rather than being rejected.
type ExtractorService interface {
	Extract(filePath string) (*ExtractedDocument, error)
}

// ExtractedDocument is the ordered chunk sequence produced from one file.
// It only lives long enough to hand its text to the prompt builder.
type ExtractedDocument struct {
	Chunks   []string
	FilePath string
}

// Text concatenates the chunks back into a single blob for prompting.
func (d *ExtractedDocument) Text() string {
	return strings.Join(d.Chunks, "\n")
}

type extractorService struct {
	chunker      TextChunker
	maxChunkSize int
}

func NewExtractorService() ExtractorService {
	return &extractorService{
		chunker:      NewTextChunker(),
		maxChunkSize: 1000,
	}
}

// Extract implements ExtractorService.
func (e *extractorService) Extract(filePath string) (*ExtractedDocument, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, &ExtractionError{Path: filePath, Err: err}
	}

	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".txt":
		text, err = e.extractText(filePath)
	case ".pdf":
		text, err = e.extractPDF(filePath)
	case ".docx", ".doc":
		text, err = e.extractDocx(filePath)
	default:
		text, err = e.extractGeneric(filePath)
	}

	if err != nil {
		// Malformed content is not fatal; retry with the generic reader.
		log.Printf("⚠️  Falling back to generic reader for %s: %v\n", filePath, err)
		text, err = e.extractGeneric(filePath)
		if err != nil {
			return nil, &ExtractionError{Path: filePath, Err: err}
		}
	}

	chunks := e.chunker.ChunkText(text, e.maxChunkSize)
	for i, chunk := range chunks {
		chunks[i] = CleanText(chunk)
	}

	return &ExtractedDocument{
		Chunks:   chunks,
		FilePath: filePath,
	}, nil
}

func (e *extractorService) extractText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(data), nil
}

func (e *extractorService) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func (e *extractorService) extractDocx(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("no text content found in docx")
	}

	return content, nil
}

// extractGeneric reads raw bytes and keeps printable runes plus whitespace.
func (e *extractorService) extractGeneric(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	var textBuilder strings.Builder
	for _, r := range string(data) {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' {
			textBuilder.WriteRune(r)
		}
	}

	return textBuilder.String(), nil
}

// CleanText normalizes extracted text: trims each line and drops blanks.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
