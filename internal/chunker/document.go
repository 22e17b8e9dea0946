// ABOUTME: Page-concatenation extraction for unstructured PDF documents
// ABOUTME: Produces one flat string served by the lexical window retriever
package chunker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nlp26/RAG/internal/models"
)

// ErrNoText is returned when a document yields zero extractable text.
// Ingestion must fail rather than commit an empty corpus.
var ErrNoText = errors.New("no text extracted from document")

// PageSeparator joins surviving page texts into the flat document string.
const PageSeparator = "\n"

// ExtractPDFPages extracts per-page text from the PDF at path, strips
// whitespace, and drops pages with no text. Returns the surviving page
// texts in page order, or ErrNoText when nothing survives.
func ExtractPDFPages(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return nil, ErrNoText
	}
	return pages, nil
}

// ExtractPDF extracts the PDF's text as one flat string. The flat string
// is not pre-chunked; retrieval slides a lexical window over it.
func ExtractPDF(path string) (string, error) {
	pages, err := ExtractPDFPages(path)
	if err != nil {
		return "", err
	}
	return JoinPages(pages)
}

// ChunkPages converts extracted page texts into chunks, one per page,
// for semantic ingestion of unstructured documents. Page order is chunk
// ID order; metadata records the 1-based page ordinal.
func ChunkPages(pages []string) ([]models.Chunk, error) {
	var kept []string
	for _, p := range pages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, ErrNoText
	}

	chunks := make([]models.Chunk, len(kept))
	for i, p := range kept {
		chunks[i] = models.Chunk{
			ID:       i,
			Text:     p,
			Metadata: map[string]string{"page": strconv.Itoa(i + 1)},
		}
	}
	return chunks, nil
}

// JoinPages joins already-extracted page texts into the flat document
// string, applying the same strip/discard rules as ExtractPDF.
func JoinPages(pages []string) (string, error) {
	var kept []string
	for _, p := range pages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return "", ErrNoText
	}
	return strings.Join(kept, PageSeparator), nil
}
