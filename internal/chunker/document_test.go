// ABOUTME: Tests for page concatenation of unstructured documents
// ABOUTME: Verifies whitespace stripping, empty-page discard, and failure
package chunker

import (
	"errors"
	"testing"
)

func TestJoinPages(t *testing.T) {
	pages := []string{"  First page.  ", "", "   ", "Second page."}

	got, err := JoinPages(pages)
	if err != nil {
		t.Fatalf("JoinPages() error = %v", err)
	}

	want := "First page.\nSecond page."
	if got != want {
		t.Errorf("JoinPages() = %q, want %q", got, want)
	}
}

func TestJoinPagesAllEmpty(t *testing.T) {
	_, err := JoinPages([]string{"", "  ", "\n"})
	if !errors.Is(err, ErrNoText) {
		t.Errorf("JoinPages() error = %v, want ErrNoText", err)
	}
}

func TestJoinPagesNoPages(t *testing.T) {
	_, err := JoinPages(nil)
	if !errors.Is(err, ErrNoText) {
		t.Errorf("JoinPages(nil) error = %v, want ErrNoText", err)
	}
}

func TestExtractPDFMissingFile(t *testing.T) {
	_, err := ExtractPDF("testdata/does-not-exist.pdf")
	if err == nil {
		t.Error("ExtractPDF() = nil error, want open failure")
	}
}

func TestChunkPages(t *testing.T) {
	pages := []string{"First page.", "  ", "Second page."}

	chunks, err := ChunkPages(pages)
	if err != nil {
		t.Fatalf("ChunkPages() error = %v", err)
	}

	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2", len(chunks))
	}
	for i, want := range []string{"First page.", "Second page."} {
		if chunks[i].ID != i {
			t.Errorf("chunks[%d].ID = %d, want %d", i, chunks[i].ID, i)
		}
		if chunks[i].Text != want {
			t.Errorf("chunks[%d].Text = %q, want %q", i, chunks[i].Text, want)
		}
	}
	if got := chunks[1].Metadata["page"]; got != "2" {
		t.Errorf("chunks[1] page metadata = %q, want %q", got, "2")
	}
}

func TestChunkPagesAllEmpty(t *testing.T) {
	_, err := ChunkPages([]string{"", "   "})
	if !errors.Is(err, ErrNoText) {
		t.Errorf("ChunkPages() error = %v, want ErrNoText", err)
	}
}
